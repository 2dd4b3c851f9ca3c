package database

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile("migrations/" + name)
	require.NoError(t, err)
	return string(raw)
}

// Seeded rows arrive with explicit ids, so identity columns must accept
// caller-supplied values; GENERATED ALWAYS rejects them outright.
func TestInitMigration_IdentityColumnsAcceptExplicitIDs(t *testing.T) {
	sql := readMigration(t, "000001_init.up.sql")

	assert.NotContains(t, sql, "GENERATED ALWAYS AS IDENTITY")
	assert.Equal(t, 5, strings.Count(sql, "GENERATED BY DEFAULT AS IDENTITY"))
}

func TestInitMigration_CategoryDeleteNullsTitles(t *testing.T) {
	sql := readMigration(t, "000001_init.up.sql")

	assert.Regexp(t,
		regexp.MustCompile(`category_id BIGINT REFERENCES categories \(id\) ON DELETE SET NULL`),
		sql)
}

func TestInitMigration_CascadeRules(t *testing.T) {
	sql := readMigration(t, "000001_init.up.sql")

	cascades := []string{
		`title_id BIGINT NOT NULL REFERENCES titles (id) ON DELETE CASCADE`,
		`genre_id BIGINT NOT NULL REFERENCES genres (id) ON DELETE CASCADE`,
		`review_id BIGINT NOT NULL REFERENCES reviews (id) ON DELETE CASCADE`,
		`author_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE`,
	}
	for _, clause := range cascades {
		assert.Contains(t, sql, clause)
	}
}

func TestInitMigration_UniqueConstraints(t *testing.T) {
	sql := readMigration(t, "000001_init.up.sql")

	// These names are load-bearing: apierror translates 23505 by constraint
	// name into field-attributed messages.
	constraints := []string{
		"CONSTRAINT uq_users_username UNIQUE (username)",
		"CONSTRAINT uq_users_email UNIQUE (email)",
		"CONSTRAINT uq_categories_slug UNIQUE (slug)",
		"CONSTRAINT uq_genres_slug UNIQUE (slug)",
		"CONSTRAINT uq_reviews_title_author UNIQUE (title_id, author_id)",
	}
	for _, c := range constraints {
		assert.Contains(t, sql, c)
	}

	assert.Contains(t, sql, "CONSTRAINT ck_reviews_score CHECK (score >= 1 AND score <= 10)")
}

func TestInitMigration_DownDropsEverything(t *testing.T) {
	down := readMigration(t, "000001_init.down.sql")

	for _, table := range []string{"comments", "reviews", "title_genres", "titles", "genres", "categories", "users"} {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table)
	}
}
