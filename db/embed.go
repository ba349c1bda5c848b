// Package db embeds the PostgreSQL schema applied at startup.
package db

import _ "embed"

// Schema creates the users, products, coupons, cart_items and orders tables.
// Every statement is idempotent so it can run on each boot.
//
//go:embed migrations/001_schema.sql
var Schema string
