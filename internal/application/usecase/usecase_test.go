package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/application/usecase"
	"github.com/jhoicas/textile-market/internal/domain/validation"
	"github.com/jhoicas/textile-market/internal/infrastructure/store"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	ctx   context.Context
	store *store.Store
	uc    *usecase.Module
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewMemory()
	return &fixture{
		ctx:   context.Background(),
		store: st,
		uc:    st.UseCases(logger.Nop(), bcrypt.MinCost),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }

func addressDTO() dto.AddressDTO {
	return dto.AddressDTO{Street: "1 Mill Rd", City: "Surat", State: "Gujarat", Pincode: "395001"}
}

func requireFieldError(t *testing.T, err error, field string) validation.FieldError {
	t.Helper()
	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "se esperaba validation.Errors, se obtuvo %v", err)
	fe := errs.Field(field)
	require.NotNil(t, fe, "falta error para %s en %v", field, errs)
	return *fe
}
