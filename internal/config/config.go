package config

import (
	"fmt"
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
	Port        int        `koanf:"port"`
	Environment string     `koanf:"environment"`
	CORS        CORS       `koanf:"cors"`
	Scheduling  Scheduling `koanf:"scheduling"`
	Google      Google     `koanf:"google"`
	PayPal      PayPal     `koanf:"paypal"`
}

type CORS struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Scheduling struct {
	CalendarID             string `koanf:"calendarid"`
	Timezone               string `koanf:"timezone"`
	MeetingDurationMinutes int    `koanf:"meetingdurationminutes"`
	NotificationEmail      string `koanf:"notificationemail"`
	DelegatedUser          string `koanf:"delegateduser"`
	StartHour              int    `koanf:"starthour"`
	EndHour                int    `koanf:"endhour"`
}

type Google struct {
	// ServiceAccount is the full service account key JSON blob.
	ServiceAccount string `koanf:"serviceaccount"`
}

type PayPal struct {
	ClientID     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
	Live         bool   `koanf:"live"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Port:        8080,
		Environment: "production",
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
		Scheduling: Scheduling{
			Timezone:               "Asia/Jerusalem",
			MeetingDurationMinutes: 30,
			StartHour:              9,
			EndHour:                17,
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
		Prefix: "SITEAPI_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SITEAPI_")), "_", ".")
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

	if err := app.validate(); err != nil {
		return Application{}, err
	}

	return app, nil
}

// validate rejects configurations that cannot produce a working service.
// The service account blob itself is only parsed on first use.
func (a Application) validate() error {
	if a.Scheduling.CalendarID == "" {
		return fmt.Errorf("scheduling.calendarid must be configured")
	}
	if a.Scheduling.NotificationEmail == "" {
		return fmt.Errorf("scheduling.notificationemail must be configured")
	}
	if a.Scheduling.DelegatedUser == "" {
		return fmt.Errorf("scheduling.delegateduser must be configured")
	}
	if a.Google.ServiceAccount == "" {
		return fmt.Errorf("google.serviceaccount must be configured")
	}
	if a.Scheduling.StartHour < 0 || a.Scheduling.EndHour > 24 || a.Scheduling.StartHour >= a.Scheduling.EndHour {
		return fmt.Errorf("scheduling business hours are invalid: start=%d end=%d", a.Scheduling.StartHour, a.Scheduling.EndHour)
	}
	if a.Scheduling.MeetingDurationMinutes <= 0 {
		return fmt.Errorf("scheduling.meetingdurationminutes must be positive")
	}
	return nil
}
