package directory

import (
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPreservesInsertionOrder(t *testing.T) {
	d := NewStaticDirectory(DefaultCatalog())

	got := d.List()
	require.Len(t, got, 4)
	assert.Equal(t, "Dr. Sharma", got[0].Name)
	assert.Equal(t, "Dr. Patel", got[1].Name)
	assert.Equal(t, "Dr. Singh", got[2].Name)
	assert.Equal(t, "Dr. Gupta", got[3].Name)

	// Repeated calls return the same order.
	assert.Equal(t, got, d.List())
}

func TestListReturnsCopy(t *testing.T) {
	d := NewStaticDirectory(DefaultCatalog())

	got := d.List()
	got[0].Name = "mutated"

	assert.Equal(t, "Dr. Sharma", d.List()[0].Name)
}

func TestFindByID(t *testing.T) {
	d := NewStaticDirectory(DefaultCatalog())

	p, err := d.FindByID("prov-singh")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Singh", p.Name)
	assert.Equal(t, "Dermatologist", p.Specialty)
	assert.Equal(t, []string{"09:30", "12:00", "16:00"}, p.OfferedTimes)

	_, err = d.FindByID("prov-nobody")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestDuplicateIDsKeepFirstDeclaration(t *testing.T) {
	d := NewStaticDirectory([]models.Provider{
		{ID: "p1", Name: "first"},
		{ID: "p1", Name: "second"},
		{ID: "p2", Name: "other"},
	})

	require.Len(t, d.List(), 2)
	p, err := d.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name)
}

func TestDefaultCatalogInvariants(t *testing.T) {
	for _, p := range DefaultCatalog() {
		assert.NotEmpty(t, p.ID)
		assert.Len(t, p.OfferedTimes, 3, "provider %s", p.ID)
		assert.Equal(t, "INR", p.Currency)
		assert.Greater(t, p.Fee, 0.0)
		if !p.Available {
			assert.False(t, p.NextAvailable.IsZero(), "provider %s", p.ID)
		}
	}
}
