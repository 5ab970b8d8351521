package domain_test

import (
	"testing"

	"crm/pkg/domain"
	"crm/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestCompany_ChangeNumberOfEmployees(t *testing.T) {
	company := domain.NewCompany("mycorp.com", 1)

	require.NoError(t, company.ChangeNumberOfEmployees(1))
	require.Equal(t, 2, company.NumberOfEmployees)

	require.NoError(t, company.ChangeNumberOfEmployees(-2))
	require.Equal(t, 0, company.NumberOfEmployees)

	err := company.ChangeNumberOfEmployees(-1)
	require.ErrorIs(t, err, serrors.ErrInvariant)
	require.Equal(t, 0, company.NumberOfEmployees, "failed mutation must not be applied")
}

func TestCompany_IsEmailCorporate(t *testing.T) {
	company := domain.NewCompany("mycorp.com", 0)

	tests := []struct {
		name      string
		email     string
		corporate bool
		wantErr   bool
	}{
		{name: "corporate address", email: "user@mycorp.com", corporate: true},
		{name: "non-corporate address", email: "user@gmail.com", corporate: false},
		{name: "subdomain does not match", email: "user@mail.mycorp.com", corporate: false},
		{name: "splits on first at sign", email: "weird@user@mycorp.com", corporate: false},
		{name: "missing at sign", email: "no-at-sign", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := company.IsEmailCorporate(tt.email)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.corporate, got)
		})
	}
}
