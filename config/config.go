package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// BigCommerce store access
	StoreHash                 string        `env:"BC_STORE_HASH,notEmpty"`
	AccessToken               string        `env:"BC_ACCESS_TOKEN,notEmpty"`
	CommerceBaseURL           string        `env:"BC_API_BASE_URL"`
	MemberGroupID             int           `env:"BC_MEMBER_GROUP_ID" envDefault:"2"`
	HTTPCommerceClientTimeout time.Duration `env:"HTTP_COMMERCE_CLIENT_TIMEOUT" envDefault:"10s"`

	// Order statuses that qualify a customer for promotion
	EligibleOrderStatuses []string `env:"ELIGIBLE_ORDER_STATUSES" envSeparator:"," envDefault:"Completed,Shipped,Awaiting Fulfillment,Awaiting Shipment"`

	// Mailchimp audience sync. All optional: missing key or list id disables
	// the audience step without error.
	MailchimpAPIKey            string        `env:"MAILCHIMP_API_KEY"`
	MailchimpListID            string        `env:"MAILCHIMP_LIST_ID"`
	MailchimpBaseURL           string        `env:"MAILCHIMP_API_BASE_URL"`
	MailchimpMemberTag         string        `env:"MAILCHIMP_MEMBER_TAG" envDefault:"Members Only"`
	HTTPMailchimpClientTimeout time.Duration `env:"HTTP_MAILCHIMP_CLIENT_TIMEOUT" envDefault:"10s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// MailchimpEnabled reports whether enough marketing config is present to run
// the audience upsert step.
func (c Config) MailchimpEnabled() bool {
	return c.MailchimpAPIKey != "" && c.MailchimpListID != ""
}
