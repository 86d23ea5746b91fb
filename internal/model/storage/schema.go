package storage

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    id BIGINT PRIMARY KEY,
    full_name TEXT NOT NULL DEFAULT '',
    preferred_currency TEXT NOT NULL DEFAULT '',
    birth_day INTEGER NOT NULL DEFAULT 0,
    birth_month INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    price NUMERIC NOT NULL CHECK (price >= 0),
    category TEXT NOT NULL,
    purchased BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS rates (
    id BIGSERIAL PRIMARY KEY,
    code TEXT NOT NULL,
    rate NUMERIC NOT NULL CHECK (rate > 0),
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);
CREATE INDEX IF NOT EXISTS idx_rates_code ON rates(code);
`

// prices and rates are TEXT so that decimals survive without float rounding
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    full_name TEXT NOT NULL DEFAULT '',
    preferred_currency TEXT NOT NULL DEFAULT '',
    birth_day INTEGER NOT NULL DEFAULT 0,
    birth_month INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    price TEXT NOT NULL,
    category TEXT NOT NULL,
    purchased BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS rates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT NOT NULL,
    rate TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);
CREATE INDEX IF NOT EXISTS idx_rates_code ON rates(code);
`
