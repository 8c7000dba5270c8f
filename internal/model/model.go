package model

import (
	"strings"
	"time"
)

const (
	ReadingStatusRead   = "Read"
	ReadingStatusUnread = "Unread"

	LendingStatusAvailable = "Available"
	LendingStatusLentOut   = "Lent Out"

	ReturnStatusReturned    = "Returned"
	ReturnStatusNotReturned = "Not Returned"
)

// Date is a yyyy-mm-dd calendar date as the domain API exchanges it.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte("\"" + d.Format(time.DateOnly) + "\""), nil
}

// UnmarshalParam lets echo bind a Date from a form or query value.
func (d *Date) UnmarshalParam(src string) error {
	if src == "" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, src)
	if err != nil {
		return err
	}
	d.Time = date
	return nil
}

type Book struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	SeriesName    string   `json:"series_name,omitempty"`
	SeriesNo      int      `json:"series_no,omitempty"`
	PurchaseDate  string   `json:"purchase_date"`
	ReadingStatus string   `json:"reading_status"`
	LendingStatus string   `json:"lending_status,omitempty"`
	PersonalNotes string   `json:"personal_notes,omitempty"`
	Images        []string `json:"images"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

type CreateBookRequest struct {
	Title         string   `json:"title" form:"title" validate:"required"`
	Author        string   `json:"author" form:"author" validate:"required"`
	Category      string   `json:"category" form:"category" validate:"required"`
	SeriesName    string   `json:"series_name,omitempty" form:"series_name"`
	SeriesNo      int      `json:"series_no,omitempty" form:"series_no"`
	PurchaseDate  string   `json:"purchase_date" form:"purchase_date" validate:"required"`
	ReadingStatus string   `json:"reading_status" form:"reading_status" validate:"required,oneof='Read' 'Unread'"`
	PersonalNotes string   `json:"personal_notes,omitempty" form:"personal_notes"`
	Images        []string `json:"images"`
}

type CreateBookResponse struct {
	Message string   `json:"message"`
	ID      int      `json:"id"`
	Images  []string `json:"images"`
}

// UpdateBookRequest is a partial update; nil fields are left untouched server-side.
type UpdateBookRequest struct {
	Title         *string   `json:"title,omitempty"`
	Author        *string   `json:"author,omitempty"`
	Category      *string   `json:"category,omitempty"`
	SeriesName    *string   `json:"series_name,omitempty"`
	SeriesNo      *int      `json:"series_no,omitempty"`
	PurchaseDate  *string   `json:"purchase_date,omitempty"`
	ReadingStatus *string   `json:"reading_status,omitempty"`
	PersonalNotes *string   `json:"personal_notes,omitempty"`
	Images        *[]string `json:"images,omitempty"`
}

// BookDetails is the detail-view payload: the book plus its series siblings
// and, when lent out, the active lending record.
type BookDetails struct {
	Book           Book           `json:"book"`
	SeriesBooks    []Book         `json:"series_books"`
	LendingDetails *LendingRecord `json:"lending_details,omitempty"`
}

type BookFilters struct {
	Page          int    `query:"page"`
	Limit         int    `query:"limit"`
	SortBy        string `query:"sort_by"`
	SortOrder     string `query:"sort_order"`
	Category      string `query:"category"`
	SeriesName    string `query:"series_name"`
	ReadingStatus string `query:"reading_status"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type BookList struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

type SeriesName struct {
	SeriesName string `json:"series_name"`
}

type WishlistItem struct {
	ID         int    `json:"id"`
	RefNo      int    `json:"ref_no"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	SeriesName string `json:"series_name,omitempty"`
	SeriesNo   int    `json:"series_no,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
	Category   string `json:"category,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type WishlistItemRequest struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	SeriesName string `json:"series_name,omitempty"`
	SeriesNo   int    `json:"series_no,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
	Category   string `json:"category,omitempty"`
}

type WishlistFilters struct {
	SeriesName string `query:"series_name"`
}

// MoveToBooksRequest carries the fields the move-to-books workflow adds on top
// of the wishlist item; the server creates the book and removes the item atomically.
type MoveToBooksRequest struct {
	PurchaseDate  Date     `json:"purchase_date" form:"purchase_date" validate:"required"`
	ReadingStatus string   `json:"reading_status" form:"reading_status" validate:"required,oneof='Read' 'Unread'"`
	PersonalNotes string   `json:"personal_notes,omitempty" form:"personal_notes"`
	Images        []string `json:"images"`
}

type LendingRecord struct {
	ID           int    `json:"id"`
	BookID       int    `json:"book_id"`
	BorrowerName string `json:"borrower_name"`
	BorrowDate   string `json:"borrow_date"`
	ReturnDate   string `json:"return_date"`
	ReturnStatus string `json:"return_status"`
	BookTitle    string `json:"book_title,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

type CreateLendingRequest struct {
	BookID       int    `json:"book_id" validate:"required"`
	BorrowerName string `json:"borrower_name" validate:"required"`
	BorrowDate   Date   `json:"borrow_date" validate:"required"`
	ReturnDate   Date   `json:"return_date" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Statistics struct {
	TotalBooks    int    `json:"total_books"`
	BooksRead     string `json:"books_read"`
	BooksLent     string `json:"books_lent"`
	WishlistItems int    `json:"wishlist_items"`
}

type UserProfile struct {
	User       User       `json:"user"`
	Statistics Statistics `json:"statistics"`
}

// UploadFile is one browser-selected file carried through a mutation workflow.
type UploadFile struct {
	Name    string
	Content []byte
}
