package ingestion

import (
	"testing"

	"go-storefront/internal/common/models"
	database "go-storefront/internal/pkg/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRun(t *testing.T, dialector gorm.Dialector) *database.Database {
	t.Helper()
	db, err := gorm.Open(dialector, &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return &database.Database{DB: db}
}

func TestCreateBuildsInsert(t *testing.T) {
	dialectors := map[string]gorm.Dialector{
		"postgres": postgres.New(postgres.Config{DSN: "host=localhost user=x dbname=x sslmode=disable"}),
		"mysql":    mysql.New(mysql.Config{DSN: "x:x@tcp(localhost:3306)/x", SkipInitializeWithVersion: true}),
	}

	for name, dialector := range dialectors {
		t.Run(name, func(t *testing.T) {
			db := dryRun(t, dialector)
			reports, err := models.NewJSONB([]map[string]any{{"filename": "a.jpg", "accepted": true}})
			require.NoError(t, err)

			record := &models.AssetIngestion{
				Status:    "accepted",
				FileCount: 1,
				Reports:   reports,
			}
			require.NoError(t, NewRepo(db).Create(t.Context(), record))
			assert.Len(t, record.ID, 36, "id is assigned before insert")

			stmt := db.Session(&gorm.Session{DryRun: true}).Create(&models.AssetIngestion{Status: "rejected"}).Statement
			assert.Contains(t, stmt.SQL.String(), "asset_ingestions")
		})
	}
}

func TestJSONBColumnType(t *testing.T) {
	pg := dryRun(t, postgres.New(postgres.Config{DSN: "host=localhost"}))
	my := dryRun(t, mysql.New(mysql.Config{DSN: "x:x@tcp(localhost:3306)/x", SkipInitializeWithVersion: true}))

	assert.Equal(t, "JSONB", models.JSONB{}.GormDBDataType(pg.DB, nil))
	assert.Equal(t, "JSON", models.JSONB{}.GormDBDataType(my.DB, nil))
}
