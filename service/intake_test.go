package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"pursaklar/store"
)

func setupMockStore(t *testing.T) (*store.Store, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return store.New(gormDB), mock, func() { sqlDB.Close() }
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "category_id", "name", "description", "price", "image_url"})
}

func TestSubmitOrder(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `services`").
		WithArgs(uint(3)).
		WillReturnRows(serviceRows().
			AddRow(3, 2, "Dönerci", "Et döner, tavuk döner", 150, "https://picsum.photos/seed/doner1/300/200.jpg"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	order, err := NewOrderIntakeService(st).SubmitOrder(3, "Ali Veli", "0532 123 45 67", "", "")
	require.NoError(t, err)

	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, "Dönerci", order.ServiceName)
	assert.Equal(t, "pending", order.Status)
	// telefon normalize edilerek kaydedilir
	assert.Equal(t, "05321234567", order.CustomerPhone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitOrder_MissingFields(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	svc := NewOrderIntakeService(st)

	// diğer alanlar geçerli olsa da eksik alan her zaman missing_fields verir
	cases := []struct {
		serviceID uint
		name      string
		phone     string
	}{
		{0, "Ali Veli", "05321234567"},
		{3, "", "05321234567"},
		{3, "   ", "05321234567"},
		{3, "Ali Veli", ""},
		{0, "", ""},
	}
	for _, tc := range cases {
		_, err := svc.SubmitOrder(tc.serviceID, tc.name, tc.phone, "", "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, ReasonMissingFields, vErr.Reason)
	}

	// doğrulama aşamasında veritabanına hiç gidilmez
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitOrder_InvalidPhone(t *testing.T) {
	st, _, cleanup := setupMockStore(t)
	defer cleanup()

	svc := NewOrderIntakeService(st)

	for _, phone := range []string{"5321234567", "055212345678", "+905321234567", "abc"} {
		_, err := svc.SubmitOrder(3, "Ali Veli", phone, "", "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "telefon: %q", phone)
		assert.Equal(t, ReasonInvalidPhone, vErr.Reason)
	}
}

func TestSubmitOrder_ServiceNotFound(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `services`").
		WithArgs(uint(999)).
		WillReturnRows(serviceRows())

	_, err := NewOrderIntakeService(st).SubmitOrder(999, "Ali Veli", "05321234567", "", "")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "service", nfErr.Entity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitOrder_InsertFails(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `services`").
		WithArgs(uint(3)).
		WillReturnRows(serviceRows().
			AddRow(3, 2, "Dönerci", "Et döner, tavuk döner", 150, ""))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	_, err := NewOrderIntakeService(st).SubmitOrder(3, "Ali Veli", "05321234567", "", "")
	var stErr *StorageError
	require.ErrorAs(t, err, &stErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitOrder_TrimsOptionalFields(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `services`").
		WithArgs(uint(3)).
		WillReturnRows(serviceRows().
			AddRow(3, 2, "Dönerci", "Et döner, tavuk döner", 150, ""))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	order, err := NewOrderIntakeService(st).SubmitOrder(3, "  Ali Veli  ", "05321234567", "  Merkez Mah. 5  ", "  kapıda ödeme  ")
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", order.CustomerName)
	assert.Equal(t, "Merkez Mah. 5", order.Address)
	assert.Equal(t, "kapıda ödeme", order.Notes)
}

func TestGetOrder(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `orders`").
		WithArgs(uint(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "service_name", "customer_name", "customer_phone", "address", "notes", "status", "created_at"}).
			AddRow(42, 3, "Dönerci", "Ali Veli", "05321234567", "", "", "pending", now))

	order, err := NewOrderIntakeService(st).GetOrder(42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, "Dönerci", order.ServiceName)
	assert.Equal(t, "pending", order.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `orders`").
		WithArgs(uint(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewOrderIntakeService(st).GetOrder(999)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "order", nfErr.Entity)
}
