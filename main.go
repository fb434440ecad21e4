package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pursaklar/config"
	"pursaklar/middleware"
	"pursaklar/router"
	"pursaklar/store"
)

// @title Pursaklar Süper App API
// @version 1.0
// @description Yerel esnaf vitrini: kategoriler, hizmetler ve sipariş alma API'si
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile   string
	port         string
	showVersion  bool
	hashPassword string
)

func init() {
	flag.StringVar(&configFile, "config", "", "dış yapılandırma dosyası yolu (isteğe bağlı)")
	flag.StringVar(&configFile, "c", "", "dış yapılandırma dosyası yolu (kısaltma)")
	flag.StringVar(&port, "port", "", "dinlenecek port, örn: 3000 veya :3000")
	flag.StringVar(&port, "p", "", "dinlenecek port (kısaltma)")
	flag.BoolVar(&showVersion, "version", false, "sürüm bilgisini göster")
	flag.BoolVar(&showVersion, "v", false, "sürüm bilgisini göster (kısaltma)")
	flag.StringVar(&hashPassword, "hash-password", "", "verilen şifrenin bcrypt özetini üret ve çık")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Pursaklar Süper App v1.0.0")
		return
	}

	// yapılandırmaya yazılacak admin şifre özeti üretimi
	if hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(hashPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("özet üretilemedi: %v", err)
		}
		log.Printf("admin.password_hash: %s", hash)
		return
	}

	// yapılandırmayı yükle (gömülü varsayılanlar + isteğe bağlı dış dosya)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("yapılandırma yüklenemedi: %v", err)
	}

	// komut satırı parametresi port ayarını ezer
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("komut satırından port: %s", port)
	}

	config.PrintConfig()

	// veritabanını aç; kapanışta Close çağrılır
	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("veritabanı açılamadı: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, st)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("==========================================")
		log.Printf("  🚀 Pursaklar Süper App çalışıyor")
		log.Printf("==========================================")
		log.Printf("  Vitrin:   http://localhost%s/", cfg.Server.Port)
		log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
		log.Printf("  API:      http://localhost%s/api/", cfg.Server.Port)
		log.Printf("==========================================")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("sunucu başlatılamadı: %v", err)
		}
	}()

	// SIGINT/SIGTERM ile düzgün kapanış
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Sunucu kapatılıyor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("sunucu düzgün kapatılamadı: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Printf("veritabanı kapatılamadı: %v", err)
	}
}
