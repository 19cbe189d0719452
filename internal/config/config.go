package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host      string   `koanf:"host"`
	Port      int      `koanf:"port"`
	PublicDir string   `koanf:"publicdir"`
	Google    Google   `koanf:"google"`
	Smtp      Smtp     `koanf:"smtp"`
	Mail      Mail     `koanf:"mail"`
	Database  Database `koanf:"db"`
}

type Google struct {
	ClientId        string `koanf:"clientid"`
	ClientSecret    string `koanf:"clientsecret"`
	RedirectUri     string `koanf:"redirecturi"`
	RefreshToken    string `koanf:"refreshtoken"`
	CredentialsFile string `koanf:"credentialsfile"`
}

type Smtp struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
}

type Mail struct {
	LogoUrl string `koanf:"logourl"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host:      "http://localhost:8080",
		Port:      8080,
		PublicDir: "./public",
		Google: Google{
			CredentialsFile: "./credentials.json",
		},
		Smtp: Smtp{
			Host: "smtp.zoho.in",
			Port: 587,
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "meetlink",
			Pass:   "",
			Name:   "meetlink",
			Schema: "meetlink",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "MEETLINK_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "MEETLINK_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
