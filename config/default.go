package config

import _ "embed"

// DefaultConfigYAML gömülü varsayılan yapılandırma.
// Dış config.yaml veya PURSAKLAR_* ortam değişkenleri ile ezilebilir.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
