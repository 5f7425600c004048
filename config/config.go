package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lucaferrario/tournament-manager/models"
)

// Config holds every configuration parameter of the application.
type Config struct {
	ServerPort            int
	JWTSecretKey          string
	OrganizerPasswordHash string
	CORSAllowedOrigins    []string
	Scoring               models.ScoringRules

	// R2 is nil when workbook publishing is not configured.
	R2 *R2Config
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Load reads the configuration from environment variables, optionally seeded
// from a .env file. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	passwordHash := os.Getenv("ORGANIZER_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, fmt.Errorf("ORGANIZER_PASSWORD_HASH environment variable is not set (generate one with cmd/hashpw)")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	scoring, err := loadScoring()
	if err != nil {
		return nil, err
	}

	r2, err := loadR2()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:            port,
		JWTSecretKey:          jwtKey,
		OrganizerPasswordHash: passwordHash,
		CORSAllowedOrigins:    origins,
		Scoring:               scoring,
		R2:                    r2,
	}, nil
}

func loadScoring() (models.ScoringRules, error) {
	rules := models.DefaultScoringRules()

	var err error
	if rules.WinPoints, err = intEnv("WIN_POINTS", rules.WinPoints); err != nil {
		return rules, err
	}
	if rules.LossPoints, err = intEnv("LOSS_POINTS", rules.LossPoints); err != nil {
		return rules, err
	}
	if rules.TiebreakPoints, err = intEnv("TIEBREAK_POINTS", rules.TiebreakPoints); err != nil {
		return rules, err
	}
	if rules.WinningSetThreshold, err = intEnv("WINNING_SET_THRESHOLD", rules.WinningSetThreshold); err != nil {
		return rules, err
	}
	if rules.WinningSetThreshold <= 0 {
		return rules, fmt.Errorf("WINNING_SET_THRESHOLD must be positive, got %d", rules.WinningSetThreshold)
	}
	return rules, nil
}

// loadR2 returns nil when none of the R2 variables are set; partial
// configuration is an error rather than a silently disabled feature.
func loadR2() (*R2Config, error) {
	r2 := &R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	set := 0
	for _, v := range []string{r2.AccountID, r2.AccessKeyID, r2.SecretAccessKey, r2.BucketName, r2.PublicBaseURL} {
		if v != "" {
			set++
		}
	}
	switch set {
	case 0:
		return nil, nil
	case 5:
		return r2, nil
	default:
		return nil, fmt.Errorf("incomplete R2 configuration: all of R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME and R2_PUBLIC_BASE_URL must be set")
	}
}

func intEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", name, err)
	}
	return v, nil
}
