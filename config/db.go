package config

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "time"

    _ "github.com/lib/pq"

    "github.com/lillybelle855/clg-predicter/models"
)

// DB is the PostgreSQL handle when DATASET_SOURCE=postgres; nil for
// the CSV source.
var DB *sql.DB

func postgresConnString() string {
    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := getEnvWithDefault("DB_PASSWORD", "")
    dbname := getEnvWithDefault("DB_NAME", "eapcet")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

    return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        host, port, user, password, dbname, sslmode)
}

// initDB opens the PostgreSQL connection and verifies the cutoff table
// exists.
func initDB() error {
    if DB != nil {
        return nil
    }

    db, err := sql.Open("postgres", postgresConnString())
    if err != nil {
        return fmt.Errorf("error opening PostgreSQL database: %v", err)
    }

    db.SetMaxOpenConns(10)
    db.SetMaxIdleConns(2)
    db.SetConnMaxLifetime(5 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err = db.PingContext(ctx); err != nil {
        db.Close()
        return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
    }

    table := DatasetTable()
    var tableExists bool
    err = db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )`, table).Scan(&tableExists)
    if err != nil {
        db.Close()
        return fmt.Errorf("error checking %s table: %v", table, err)
    }
    if !tableExists {
        db.Close()
        return fmt.Errorf("%s table does not exist in the database", table)
    }

    DB = db
    log.Printf("Connected to PostgreSQL, cutoff table %q verified", table)
    return nil
}

// loadFromPostgres reads the whole cutoff table into a snapshot. The
// result set's column names stand in for the CSV header, so the same
// schema validation and category discovery applies.
func loadFromPostgres() (*models.Dataset, error) {
    if err := initDB(); err != nil {
        return nil, err
    }

    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    defer cancel()

    rows, err := DB.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %q ORDER BY ctid`, DatasetTable()))
    if err != nil {
        return nil, fmt.Errorf("error querying cutoff table: %v", err)
    }
    defer rows.Close()

    columns, err := rows.Columns()
    if err != nil {
        return nil, fmt.Errorf("error reading cutoff columns: %v", err)
    }

    var raw [][]string
    values := make([]sql.NullString, len(columns))
    scanArgs := make([]interface{}, len(columns))
    for i := range values {
        scanArgs[i] = &values[i]
    }

    for rows.Next() {
        if err := rows.Scan(scanArgs...); err != nil {
            return nil, fmt.Errorf("error scanning cutoff row: %v", err)
        }
        row := make([]string, len(columns))
        for i, v := range values {
            if v.Valid {
                row[i] = v.String
            }
        }
        raw = append(raw, row)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("error iterating cutoff rows: %v", err)
    }

    return buildDataset(columns, raw)
}

// CheckPostgresHealth pings the database when the Postgres source is
// active.
func CheckPostgresHealth() error {
    if DB == nil {
        return fmt.Errorf("PostgreSQL not in use")
    }

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := DB.PingContext(ctx); err != nil {
        return fmt.Errorf("PostgreSQL health check failed: %v", err)
    }
    return nil
}

// CloseDB releases the database connection on shutdown.
func CloseDB() {
    if DB != nil {
        if err := DB.Close(); err != nil {
            log.Printf("Error closing PostgreSQL connection: %v", err)
        }
    }
}
