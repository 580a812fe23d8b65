package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type cart struct {
	StorageKey string `mapstructure:"storage_key"`
}

type catalog struct {
	SeedPath  string        `mapstructure:"seed_path"`
	LoadDelay time.Duration `mapstructure:"load_delay"`
}

type topics struct {
	CatalogProducts   string `mapstructure:"catalog_products"`
	CartNotifications string `mapstructure:"cart_notifications"`
}

type consumers struct {
	CatalogGroup string `mapstructure:"catalog_group"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Cart           cart       `mapstructure:"cart"`
	Catalog        catalog    `mapstructure:"catalog"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	Cart:
	StorageKey=%q

	Catalog:
	SeedPath=%q
	LoadDelay=%v

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		CatalogProducts=%q
		CartNotifications=%q
	Consumers:
		CatalogGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.Cart.StorageKey,
		c.Catalog.SeedPath,
		c.Catalog.LoadDelay,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.CatalogProducts,
		c.Broker.Topics.CartNotifications,
		c.Broker.Consumers.CatalogGroup,
	)
}
