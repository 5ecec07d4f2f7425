package config

import (
    "bufio"
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"
)

// Dataset source configuration.
func DatasetSource() string {
    return getEnvWithDefault("DATASET_SOURCE", "csv")
}

func DatasetPath() string {
    return getEnvWithDefault("DATASET_PATH", "apc.csv")
}

func DatasetTable() string {
    return getEnvWithDefault("DATASET_TABLE", "cutoffs")
}

func ServerPort() string {
    return getEnvWithDefault("PORT", "8080")
}

// AllowedOrigins returns the CORS origin whitelist, comma-separated in
// CORS_ORIGINS, defaulting to local development hosts.
func AllowedOrigins() []string {
    raw := getEnvWithDefault("CORS_ORIGINS",
        "http://localhost:3000,http://localhost:5173,http://localhost:8080")
    parts := strings.Split(raw, ",")
    origins := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            origins = append(origins, p)
        }
    }
    return origins
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("PREDICTOR_ENV"),
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            break
        }
    }

    if loadedFile == "" {
        return fmt.Errorf("no .env file found")
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
        os.Setenv(key, value)
    }

    return scanner.Err()
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
