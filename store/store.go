package store

import (
	"fmt"
	"log"

	"pursaklar/config"
	"pursaklar/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store katalog ve sipariş tablolarının üzerindeki ince kalıcılık katmanı.
// main'de Open ile açılır, kapanışta Close çağrılır ve ihtiyaç duyan
// servislere referans olarak geçirilir; global bir bağlantı tutulmaz.
type Store struct {
	db *gorm.DB
}

// Open veritabanı bağlantısını açar, tabloları taşır ve katalog boşsa
// varsayılan verileri ekler.
func Open(cfg *config.Config) (*Store, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// bağlantı havuzu ayarları
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Service{},
		&models.Order{},
	); err != nil {
		return nil, err
	}

	st := New(db)
	if err := st.seedCatalog(); err != nil {
		return nil, err
	}

	log.Println("veritabanı hazır")
	return st, nil
}

// New mevcut bir gorm bağlantısını sarar
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Close altta yatan bağlantı havuzunu kapatır
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedCatalog katalog tabloları boşsa varsayılan kategori ve hizmetleri ekler.
// Katalog çalışma anında değişmez; bu ekleme yalnızca ilk kurulumda yapılır.
func (s *Store) seedCatalog() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("varsayılan katalog ekleniyor...")
	cats := models.DefaultCategories()
	if err := s.db.Create(&cats).Error; err != nil {
		return fmt.Errorf("kategoriler eklenemedi: %w", err)
	}
	svcs := models.DefaultServices()
	if err := s.db.Create(&svcs).Error; err != nil {
		return fmt.Errorf("hizmetler eklenemedi: %w", err)
	}
	log.Printf("%d kategori ve %d hizmet eklendi", len(cats), len(svcs))
	return nil
}
