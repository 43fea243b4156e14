package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    id          INTEGER PRIMARY KEY,
    money_type  TEXT NOT NULL,
    amount      REAL NOT NULL,
    expense     TEXT,
    time        TEXT NOT NULL
);
`
