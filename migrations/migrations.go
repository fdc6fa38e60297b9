package migrations

import (
	"database/sql"
	"time"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		photo VARCHAR(255) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		dob DATETIME NOT NULL,
		role VARCHAR(10) NOT NULL DEFAULT 'user',
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		photo VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		stock INT NOT NULL,
		category VARCHAR(100) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		pin_code INT NOT NULL,
		subtotal DOUBLE NOT NULL,
		tax DOUBLE NOT NULL,
		shipping_charges DOUBLE NOT NULL,
		discount DOUBLE NOT NULL,
		total DOUBLE NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		product_id INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		photo VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		quantity INT NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id INT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(50) NOT NULL,
		amount DOUBLE NOT NULL
	);`,
}

// AutoMigrate creates the tables if they do not exist, retrying each
// statement in case the database is still warming up.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range statements {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
