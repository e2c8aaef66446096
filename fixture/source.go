package fixture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Source func(context.Context, *Catalog) error

func YAMLSource(path string) Source {
	return func(ctx context.Context, c *Catalog) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tables, err := decodeYAML(content)
		if err != nil {
			return err
		}
		return c.addTables(ctx, tables)
	}
}

func decodeYAML(content []byte) ([]*Table, error) {
	validate := validator.New()
	types.RegisterKindValidation(validate)
	dec := yaml.NewDecoder(
		bytes.NewBuffer(content),
		yaml.Validator(validate),
		yaml.Strict(),
	)
	var v struct {
		Tables []*Table `yaml:"tables" validate:"required"`
	}
	if err := dec.Decode(&v); err != nil {
		return nil, errors.New(yaml.FormatError(err, false, true))
	}
	return v.Tables, nil
}

func JSONSource(path string) Source {
	return func(ctx context.Context, c *Catalog) error {
		jsonFile, err := os.Open(path)
		if err != nil {
			return err
		}

		content, err := io.ReadAll(jsonFile)
		if err != nil {
			return err
		}

		err = jsonFile.Close()
		if err != nil {
			return err
		}

		tables, err := decodeJSON(content)
		if err != nil {
			return err
		}
		return c.addTables(ctx, tables)
	}
}

func decodeJSON(content []byte) ([]*Table, error) {
	var v struct {
		Tables []*Table `json:"tables" validate:"required,dive"`
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	validate := validator.New()
	types.RegisterKindValidation(validate)
	if err := validate.Struct(&v); err != nil {
		return nil, err
	}
	return v.Tables, nil
}

func StructSource(tables ...*Table) Source {
	return func(ctx context.Context, c *Catalog) error {
		return c.addTables(ctx, tables)
	}
}

// Catalog holds the loaded fixture tables in load order.
type Catalog struct {
	tables []*LoadedTable
	byID   map[string]*LoadedTable
}

func Load(ctx context.Context, sources ...Source) (*Catalog, error) {
	c := &Catalog{byID: map[string]*LoadedTable{}}
	for _, source := range sources {
		if err := source(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Tables() []*LoadedTable {
	return c.tables
}

func (c *Catalog) Table(id string) (*LoadedTable, error) {
	table, exists := c.byID[id]
	if !exists {
		return nil, fmt.Errorf("table %s is not found", id)
	}
	return table, nil
}

// addTables parses every table on its own goroutine. A table's Values are
// only touched by the goroutine that builds them.
func (c *Catalog) addTables(ctx context.Context, tables []*Table) error {
	seen := make(map[string]struct{}, len(tables))
	for _, table := range tables {
		if _, exists := c.byID[table.ID]; exists {
			return fmt.Errorf("table %s is already loaded", table.ID)
		}
		if _, exists := seen[table.ID]; exists {
			return fmt.Errorf("table %s is defined twice", table.ID)
		}
		seen[table.ID] = struct{}{}
	}
	loaded := make([]*LoadedTable, len(tables))
	eg, ctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		i, table := i, table
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := table.load()
			if err != nil {
				return fmt.Errorf("failed to load table %s: %w", table.ID, err)
			}
			logger.Logger(ctx).Debug("loaded fixture table", zap.String("table", t.ID), zap.Int("rows", len(t.Rows)))
			loaded[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, t := range loaded {
		c.byID[t.ID] = t
		c.tables = append(c.tables, t)
	}
	return nil
}
