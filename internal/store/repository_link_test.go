package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/marketcore/vendor-shipping/internal/logger"
)

func newTestLinkRepo(t *testing.T) (*linkRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &linkRepository{
		db:     &DB{DB: db, builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestOwnerOf_Success(t *testing.T) {
	repo, mock, db := newTestLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT seller_id").
		WithArgs("so_01").
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}).AddRow("sel_01"))

	sellerID, err := repo.OwnerOf(ctx, "so_01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sellerID != "sel_01" {
		t.Errorf("expected owner sel_01, got %s", sellerID)
	}
}

func TestOwnerOf_NotFound(t *testing.T) {
	repo, mock, db := newTestLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT seller_id").
		WithArgs("so_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.OwnerOf(ctx, "so_missing")
	if !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestFindOrphanShippingOptions(t *testing.T) {
	repo, mock, db := newTestLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("so_07").AddRow("so_09")

	mock.ExpectQuery("LEFT JOIN seller_shipping_option_links").
		WillReturnRows(rows)

	orphans, err := repo.FindOrphanShippingOptions(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orphans) != 2 || orphans[0] != "so_07" || orphans[1] != "so_09" {
		t.Errorf("unexpected orphan ids: %v", orphans)
	}
}

func TestFindOrphanShippingOptions_QueryError(t *testing.T) {
	repo, mock, db := newTestLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("LEFT JOIN seller_shipping_option_links").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindOrphanShippingOptions(ctx, 100)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
