package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		role TEXT NOT NULL DEFAULT 'sender',
		blocked BOOLEAN NOT NULL DEFAULT false,
		password_hash TEXT,
		email_verified BOOLEAN NOT NULL DEFAULT false,
		phone_verified BOOLEAN NOT NULL DEFAULT false,
		identity_verified BOOLEAN NOT NULL DEFAULT false,
		identity_submitted_at DATETIME,
		identity_verified_at DATETIME,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otp_codes (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		purpose TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		used BOOLEAN NOT NULL DEFAULT false,
		used_at DATETIME,
		created_at DATETIME,
		UNIQUE(email, purpose)
	);`)
}

func createKYCTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_applications (
		user_id TEXT PRIMARY KEY,
		status TEXT NOT NULL DEFAULT 'pending',
		selfie_image TEXT,
		front_image TEXT,
		back_image TEXT,
		full_name TEXT,
		date_of_birth TEXT,
		gender TEXT,
		phone TEXT,
		address TEXT,
		submitted_at DATETIME,
		updated_at DATETIME,
		reviewed_at DATETIME,
		reviewed_by TEXT,
		rejection_reason TEXT
	);`)
}

func createDisputeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE disputes (
		id TEXT PRIMARY KEY,
		dispute_id TEXT NOT NULL UNIQUE,
		reporter_id TEXT NOT NULL,
		reported_user_id TEXT NOT NULL,
		booking_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		description TEXT NOT NULL,
		evidence TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		priority TEXT NOT NULL DEFAULT 'medium',
		admin_id TEXT,
		assigned_to TEXT,
		admin_notes TEXT,
		resolution TEXT,
		resolution_type TEXT,
		created_at DATETIME,
		last_updated DATETIME,
		resolved_at DATETIME
	);`)
}

func createPackageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE package_requests (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		description TEXT,
		weight_kg REAL NOT NULL,
		reward_eur REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTripTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE travel_trips (
		id TEXT PRIMARY KEY,
		traveler_id TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_date DATETIME NOT NULL,
		capacity_kg REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'planned',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBookingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		package_id TEXT NOT NULL,
		trip_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		booking_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		amount_eur REAL NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reference TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDeliveryTrackingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE delivery_tracking (
		package_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		location TEXT,
		updated_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		user_id TEXT PRIMARY KEY,
		balance_eur REAL NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'EUR',
		updated_at DATETIME
	);`)
}

func createCampaignTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_campaigns (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		recipient_count INTEGER NOT NULL,
		sent_count INTEGER NOT NULL DEFAULT 0,
		failed_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'sending',
		created_by TEXT,
		created_at DATETIME,
		completed_at DATETIME
	);`)
}
