package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Seed is a reference catalog: categories, their muscles and each muscle's exercises.
type Seed struct {
	Categories []SeedCategory `yaml:"categories"`
}

type SeedCategory struct {
	Name    string       `yaml:"name"`
	Muscles []SeedMuscle `yaml:"muscles"`
}

type SeedMuscle struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises"`
}

type SeedResult struct {
	MusclesAdded   int
	ExercisesAdded int
}

func LoadSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty seed document")
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for _, c := range seed.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, errors.New("seed category without a name")
		}
		for _, m := range c.Muscles {
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("seed muscle without a name in category [%s]", c.Name)
			}
			for _, e := range m.Exercises {
				if strings.TrimSpace(e) == "" {
					return nil, fmt.Errorf("empty exercise name for muscle [%s/%s]", c.Name, m.Name)
				}
			}
		}
	}

	return &seed, nil
}

// DefaultSeed is the catalog shipped with the binary.
func DefaultSeed() (*Seed, error) {
	return LoadSeed(bytes.NewReader(defaultCatalog))
}

// ApplySeed inserts the muscles and exercises that do not exist yet, matched by name.
// Everything is written in one transaction, existing rows are never changed.
func (r *Repo) ApplySeed(ctx context.Context, seed *Seed) (_ SeedResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var result SeedResult
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range seed.Categories {
			category := strings.TrimSpace(c.Name)
			for _, m := range c.Muscles {
				muscleID, added, err := ensureMuscle(ctx, tx, category, strings.TrimSpace(m.Name))
				if err != nil {
					return err
				}
				if added {
					result.MusclesAdded++
				}

				for _, e := range m.Exercises {
					tag, err := tx.Exec(
						ctx,
						`INSERT INTO exercise_library (muscle_id, exercise_name)
							SELECT $1, $2
							WHERE NOT EXISTS (
								SELECT 1 FROM exercise_library WHERE muscle_id = $1 AND exercise_name = $2
							);`,
						muscleID, strings.TrimSpace(e),
					)
					if err != nil {
						return fmt.Errorf("seed exercise [%s]: %w", e, err)
					}
					result.ExercisesAdded += int(tag.RowsAffected())
				}
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	span.SetAttributes(
		attribute.Int("muscles.added", result.MusclesAdded),
		attribute.Int("exercises.added", result.ExercisesAdded),
	)
	log.Debugf("catalog seed applied: %d muscles, %d exercises added", result.MusclesAdded, result.ExercisesAdded)

	return result, nil
}

func ensureMuscle(ctx context.Context, q db.Querier, category, name string) (id int, added bool, err error) {
	err = q.QueryRow(
		ctx,
		`SELECT id FROM muscles WHERE category = $1 AND muscle_name = $2 ORDER BY id LIMIT 1;`,
		category, name,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("find muscle [%s/%s]: %w", category, name, err)
	}

	if err := q.QueryRow(
		ctx,
		`INSERT INTO muscles (category, muscle_name) VALUES ($1, $2) RETURNING id;`,
		category, name,
	).Scan(&id); err != nil {
		return 0, false, fmt.Errorf("seed muscle [%s/%s]: %w", category, name, err)
	}

	return id, true, nil
}
