package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"reviewhub/database"
	"reviewhub/internal/config"
	"reviewhub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the database from the legacy CSV dump. Rows are upserted by
// primary key so the command can be re-run safely.
func main() {
	dataDir := flag.String("data", "data", "directory containing the csv files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	imp := &importer{db: db, dir: *dataDir, logger: logger, users: map[int64]string{}}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"category.csv", imp.importCategories},
		{"genre.csv", imp.importGenres},
		{"users.csv", imp.importUsers},
		{"titles.csv", imp.importTitles},
		{"genre_title.csv", imp.importTitleGenres},
		{"review.csv", imp.importReviews},
		{"comments.csv", imp.importComments},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			log.Fatalf("import %s: %v", step.name, err)
		}
		logger.Info("imported", "file", step.name)
	}

	if err := imp.resetSequences(); err != nil {
		log.Fatalf("reset sequences: %v", err)
	}
	logger.Info("identity sequences advanced past imported ids")
}

type importer struct {
	db     *gorm.DB
	dir    string
	logger *slog.Logger

	// legacy integer user id -> generated uuid, for review/comment authors
	users map[int64]string
}

// readRows returns the data rows of a csv file keyed by the header row.
func (imp *importer) readRows(name string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(imp.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", name)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (imp *importer) upsert(rows []any) error {
	for _, row := range rows {
		err := imp.db.
			Clauses(clause.OnConflict{UpdateAll: true}).
			Omit(clause.Associations).
			Create(row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importCategories() error {
	rows, err := imp.readRows("category.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}
		c := models.Category{ID: id, Name: row["name"], Slug: row["slug"]}
		if err := imp.upsert([]any{&c}); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importGenres() error {
	rows, err := imp.readRows("genre.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}
		g := models.Genre{ID: id, Name: row["name"], Slug: row["slug"]}
		if err := imp.upsert([]any{&g}); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importUsers() error {
	rows, err := imp.readRows("users.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		legacyID, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}

		u := models.User{
			Username:  row["username"],
			Email:     row["email"],
			Role:      row["role"],
			Bio:       row["bio"],
			FirstName: row["first_name"],
			LastName:  row["last_name"],
			IsActive:  true,
		}
		if u.Role == "" {
			u.Role = models.RoleUser
		}

		// Users carry uuid keys, so match on username instead of the
		// legacy id and remember the mapping for review/comment authors.
		var existing models.User
		err = imp.db.Where("username = ?", u.Username).First(&existing).Error
		switch {
		case err == nil:
			u.ID = existing.ID
			if err := imp.db.Model(&existing).Omit(clause.Associations).Updates(map[string]any{
				"email":      u.Email,
				"role":       u.Role,
				"bio":        u.Bio,
				"first_name": u.FirstName,
				"last_name":  u.LastName,
			}).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			if err := imp.db.Omit(clause.Associations).Create(&u).Error; err != nil {
				return err
			}
		default:
			return err
		}

		imp.users[legacyID] = u.ID
	}
	return nil
}

func (imp *importer) importTitles() error {
	rows, err := imp.readRows("titles.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}
		year, err := strconv.Atoi(row["year"])
		if err != nil {
			return err
		}

		t := models.Title{ID: id, Name: row["name"], Year: year}
		if raw := row["category"]; raw != "" {
			categoryID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			t.CategoryID = &categoryID
		}
		if err := imp.upsert([]any{&t}); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importTitleGenres() error {
	rows, err := imp.readRows("genre_title.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		titleID, err := strconv.ParseInt(row["title_id"], 10, 64)
		if err != nil {
			return err
		}
		genreID, err := strconv.ParseInt(row["genre_id"], 10, 64)
		if err != nil {
			return err
		}
		err = imp.db.Exec(
			`INSERT INTO title_genres (title_id, genre_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			titleID, genreID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importReviews() error {
	rows, err := imp.readRows("review.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}
		titleID, err := strconv.ParseInt(row["title_id"], 10, 64)
		if err != nil {
			return err
		}
		score, err := strconv.Atoi(row["score"])
		if err != nil {
			return err
		}
		authorID, err := imp.authorID(row["author"])
		if err != nil {
			return err
		}
		pubDate, err := parseTimestamp(row["pub_date"])
		if err != nil {
			return err
		}

		r := models.Review{
			ID:       id,
			TitleID:  titleID,
			AuthorID: authorID,
			Text:     row["text"],
			Score:    score,
			PubDate:  pubDate,
		}
		if err := imp.upsert([]any{&r}); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importComments() error {
	rows, err := imp.readRows("comments.csv")
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["id"], 10, 64)
		if err != nil {
			return err
		}
		reviewID, err := strconv.ParseInt(row["review_id"], 10, 64)
		if err != nil {
			return err
		}
		authorID, err := imp.authorID(row["author"])
		if err != nil {
			return err
		}
		pubDate, err := parseTimestamp(row["pub_date"])
		if err != nil {
			return err
		}

		c := models.Comment{
			ID:       id,
			ReviewID: reviewID,
			AuthorID: authorID,
			Text:     row["text"],
			PubDate:  pubDate,
		}
		if err := imp.upsert([]any{&c}); err != nil {
			return err
		}
	}
	return nil
}

// resetSequences moves each identity sequence past the highest imported id.
// Without this the first API-driven insert after a seed reuses a seeded key.
func (imp *importer) resetSequences() error {
	for _, table := range []string{"categories", "genres", "titles", "reviews", "comments"} {
		err := imp.db.Exec(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
			table, table,
		)).Error
		if err != nil {
			return fmt.Errorf("advance %s id sequence: %w", table, err)
		}
	}
	return nil
}

func (imp *importer) authorID(raw string) (string, error) {
	legacyID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", err
	}
	id, ok := imp.users[legacyID]
	if !ok {
		return "", fmt.Errorf("unknown author id %d", legacyID)
	}
	return id, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
