package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Dula827/booknest-frontend/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKNEST_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKNEST_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

// DomainAPI is the primary REST service owning books, wishlist, lending and user data.
type DomainAPI struct {
	Host string `envconfig:"DOMAIN_API_HOST" default:"localhost"`
	Port string `envconfig:"DOMAIN_API_PORT" default:"3000"`
}

// ImageService is the secondary file-upload/image-serving service.
type ImageService struct {
	Host string `envconfig:"IMAGE_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"IMAGE_SERVICE_PORT" default:"3001"`
}

type Session struct {
	// Path is the single storage location for the bearer token, used by both
	// write and clear so logout actually removes the session.
	Path string `envconfig:"SESSION_FILE" default:".booknest/session"`
}

type Config struct {
	Server       HTTPServer `yaml:"server"`
	DomainAPI    DomainAPI
	ImageService ImageService
	Session      Session
	Log          logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
