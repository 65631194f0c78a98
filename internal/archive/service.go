package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"trailviewer/internal/db"
	"trailviewer/internal/stream"
	"trailviewer/internal/trail"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paulmach/orb/encoding/wkt"
)

// Collection is the stream hub collection archive events are broadcast on.
const Collection = "archive"

var (
	ErrNotFound = errors.New("archived trail not found")
	ErrDisabled = errors.New("trail archive is not configured")
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

const schema = `
	CREATE TABLE IF NOT EXISTS trails (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		source      TEXT NOT NULL,
		point_count INTEGER NOT NULL,
		length_m    DOUBLE PRECISION NOT NULL,
		centre_lat  DOUBLE PRECISION NOT NULL,
		centre_lon  DOUBLE PRECISION NOT NULL,
		path_wkt    TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Enabled() bool {
	return s != nil && s.db != nil
}

// Migrate creates the trails table when it is missing.
func (s *Service) Migrate(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.db.Exec(ctx, schema)
	return err
}

func (s *Service) Save(ctx context.Context, t trail.Trail, source string) (Record, error) {
	if !s.Enabled() {
		return Record{}, ErrDisabled
	}

	rec := Record{Summary: t.Summary(), Source: source}
	rec.ID = uuid.NewString()

	row := s.db.QueryRow(ctx, `
		INSERT INTO trails (id, name, source, point_count, length_m, centre_lat, centre_lon, path_wkt)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, rec.ID, rec.Name, rec.Source, rec.PointCount, rec.LengthM, rec.Centre.Lat, rec.Centre.Lon, wkt.MarshalString(t.LineString()))
	if err := row.Scan(&rec.CreatedAt); err != nil {
		return Record{}, fmt.Errorf("archive %s: %w", t.Name, err)
	}

	if s.hub != nil {
		payload, err := json.Marshal(rec)
		if err != nil {
			log.Printf("archive broadcast encode error: %v", err)
		} else {
			s.hub.Broadcast(Collection, payload)
		}
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, name, source, point_count, length_m, centre_lat, centre_lon, created_at
		FROM trails
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Source, &r.PointCount, &r.LengthM, &r.Centre.Lat, &r.Centre.Lon, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.LengthLabel = trail.KmLabel(r.LengthM)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Get rebuilds an archived trail from its stored path, so centre and length
// are recomputed rather than trusted from the row.
func (s *Service) Get(ctx context.Context, id string) (trail.Trail, Record, error) {
	if !s.Enabled() {
		return trail.Trail{}, Record{}, ErrDisabled
	}

	var (
		rec     Record
		pathWKT string
	)
	row := s.db.QueryRow(ctx, `
		SELECT id, name, source, path_wkt, created_at
		FROM trails WHERE id=$1
	`, id)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Source, &pathWKT, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trail.Trail{}, Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return trail.Trail{}, Record{}, err
	}

	ls, err := wkt.UnmarshalLineString(pathWKT)
	if err != nil {
		return trail.Trail{}, Record{}, fmt.Errorf("decode path of %s: %w", id, err)
	}
	points := make([]trail.Point, 0, len(ls))
	for _, p := range ls {
		points = append(points, trail.Point{Lat: p.Lat(), Lon: p.Lon()})
	}

	t := trail.New(rec.Name, points)
	summary := t.Summary()
	summary.ID = rec.ID
	rec.Summary = summary
	return t, rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.Enabled() {
		return ErrDisabled
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM trails WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
