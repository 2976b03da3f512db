package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Chain    ChainConfig
	Settler  SettlerConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Routes   []RouteConfig
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type ChainConfig struct {
	RPCURL            string `mapstructure:"rpc_url"`
	ContractAddress   string `mapstructure:"contract_address"`
	GatewayPrivateKey string `mapstructure:"gateway_private_key"`
	ChainID           int64  `mapstructure:"chain_id"`
	Network           string `mapstructure:"network"`
}

type SettlerConfig struct {
	IntervalSec      int64 `mapstructure:"interval_sec"`
	SettleTimeoutSec int64 `mapstructure:"settle_timeout_sec"`
	CallTimeoutSec   int64 `mapstructure:"call_timeout_sec"`
}

type RedisConfig struct {
	Addr        string `mapstructure:"addr"`
	Password    string `mapstructure:"password"`
	NonceTTLSec int64  `mapstructure:"nonce_ttl_sec"`
}

type UpstreamConfig struct {
	TimeoutSec int64 `mapstructure:"timeout_sec"`
}

// RouteConfig binds a protected path to a marketplace listing and the
// merchant API it fronts.
type RouteConfig struct {
	Path     string `mapstructure:"path" json:"path"`
	APIID    uint64 `mapstructure:"api_id" json:"api_id"`
	Upstream string `mapstructure:"upstream" json:"upstream"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("chain.network", "sepolia")
	v.SetDefault("settler.interval_sec", 10)
	v.SetDefault("settler.settle_timeout_sec", 60)
	v.SetDefault("settler.call_timeout_sec", 10)
	v.SetDefault("redis.nonce_ttl_sec", 300)
	v.SetDefault("upstream.timeout_sec", 30)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")
	_ = v.ReadInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit env bindings
	bindings := map[string]string{
		"server.port":                "PORT",
		"chain.rpc_url":              "RPC_URL",
		"chain.contract_address":     "CONTRACT_ADDRESS",
		"chain.gateway_private_key":  "GATEWAY_PRIVATE_KEY",
		"chain.chain_id":             "CHAIN_ID",
		"chain.network":              "NETWORK",
		"settler.interval_sec":       "SETTLE_INTERVAL_SEC",
		"settler.settle_timeout_sec": "SETTLE_TIMEOUT_SEC",
		"settler.call_timeout_sec":   "CALL_TIMEOUT_SEC",
		"redis.addr":                 "REDIS_ADDR",
		"redis.password":             "REDIS_PASSWORD",
		"redis.nonce_ttl_sec":        "NONCE_TTL_SEC",
		"upstream.timeout_sec":       "UPSTREAM_TIMEOUT_SEC",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Routes can't be expressed through AutomaticEnv; accept a JSON list in
	// ROUTES as the container-friendly alternative to the YAML file.
	if raw := os.Getenv("ROUTES"); raw != "" {
		var routes []RouteConfig
		if err := json.Unmarshal([]byte(raw), &routes); err != nil {
			return nil, fmt.Errorf("parse ROUTES: %w", err)
		}
		cfg.Routes = routes
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	type req struct {
		val  string
		name string
	}
	for _, r := range []req{
		{c.Chain.RPCURL, "RPC_URL"},
		{c.Chain.ContractAddress, "CONTRACT_ADDRESS"},
		{c.Chain.GatewayPrivateKey, "GATEWAY_PRIVATE_KEY"},
	} {
		if r.val == "" {
			return fmt.Errorf("required config missing: %s", r.name)
		}
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("required config missing: CHAIN_ID")
	}
	if len(c.Routes) == 0 {
		return fmt.Errorf("no protected routes configured")
	}
	for i, rt := range c.Routes {
		if rt.Path == "" || rt.Upstream == "" {
			return fmt.Errorf("route %d: path and upstream are required", i)
		}
	}
	return nil
}
