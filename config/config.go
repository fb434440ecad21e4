package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config uygulama yapılandırması
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig sunucu yapılandırması
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig veritabanı yapılandırması
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig yönetici oturumu için JWT yapılandırması
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// AdminConfig işletme sahibi hesabı.
// PasswordHash bcrypt özetidir; `pursaklar -hash-password <şifre>` ile üretilir.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// EmailConfig yeni sipariş bildirimi için e-posta yapılandırması
type EmailConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	OwnerEmail string `mapstructure:"owner_email"`
}

var (
	// GlobalConfig genel yapılandırma örneği
	GlobalConfig *Config
)

// LoadConfig yapılandırmayı yükler.
// Öncelik: dış yapılandırma dosyası > gömülü varsayılan yapılandırma
// configPath: isteğe bağlı dış yapılandırma dosyası yolu
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Önce gömülü varsayılan yapılandırmayı yükle
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("gömülü yapılandırma okunamadı: %w", err)
	}

	// 2. Dış yapılandırma dosyasını dene (isteğe bağlı, varsayılanları ezmek için)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("uyarı: belirtilen yapılandırma dosyası okunamadı %s: %v", configPath, err)
		} else {
			log.Printf("dış yapılandırma dosyası birleştirildi: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/pursaklar")
		externalViper.AddConfigPath("$HOME/.pursaklar")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("uyarı: dış yapılandırma birleştirilemedi: %v", err)
			} else {
				log.Printf("dış yapılandırma dosyası birleştirildi: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Ortam değişkenleri ile ezme (isteğe bağlı)
	v.SetEnvPrefix("PURSAKLAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("yapılandırma çözümlenemedi: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// GetConfig genel yapılandırmayı döner
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("yapılandırma yüklenmedi, önce LoadConfig çağrılmalı")
	}
	return GlobalConfig
}

// PrintConfig geçerli yapılandırmayı yazdırır (hassas bilgiler gizlenir)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("geçerli yapılandırma:")
	log.Printf("  sunucu: %s (mod: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  veritabanı: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  e-posta bildirimi: %v", GlobalConfig.Email.Enabled)
}

// SafeErrorMessage release modunda iç hata detayını istemciye sızdırmaz
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
