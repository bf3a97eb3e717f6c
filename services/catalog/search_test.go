package catalog

import (
	"errors"
	"testing"

	"poojaghar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	mantras     []models.Mantra
	items       []models.ServiceItem
	astrologers []models.Astrologer

	mantrasErr error
	itemsErr   error

	mantraFetches int
	itemFetches   int
}

func (r *fakeCatalogRepo) AllMantras() ([]models.Mantra, error) {
	r.mantraFetches++
	return r.mantras, r.mantrasErr
}

func (r *fakeCatalogRepo) AllServiceItems() ([]models.ServiceItem, error) {
	r.itemFetches++
	return r.items, r.itemsErr
}

func (r *fakeCatalogRepo) AllAstrologers() ([]models.Astrologer, error) {
	return r.astrologers, nil
}

func (r *fakeCatalogRepo) AstrologerByID(id string) (*models.Astrologer, error) {
	for i := range r.astrologers {
		if r.astrologers[i].ID == id {
			return &r.astrologers[i], nil
		}
	}
	return nil, nil
}

func seededRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		mantras: []models.Mantra{
			{ID: "m1", Title: "Ganesh Mantra", Description: "Invocation before new beginnings", Category: "devotional"},
			{ID: "m2", Title: "Shiva Tandava Stotram", Description: "Hymn in praise of Shiva", Category: "stotram"},
		},
		items: []models.ServiceItem{
			{ID: "p1", Name: "Ganesh Idol", Description: "Brass idol for the home shrine", Category: "idols"},
			{ID: "p2", Name: "Puja Thali Set", Description: "Complete thali for daily rituals", Category: "puja essentials"},
		},
	}
}

func TestSearchMatchesBothCollections(t *testing.T) {
	svc := &DefaultService{Repo: seededRepo()}

	results := svc.Search("ganesh")
	require.Len(t, results, 2)

	// Mantra matches always precede item matches.
	assert.Equal(t, models.SearchResultMantra, results[0].Type)
	assert.Equal(t, "Ganesh Mantra", results[0].Mantra.Title)
	assert.Equal(t, models.SearchResultProduct, results[1].Type)
	assert.Equal(t, "Ganesh Idol", results[1].Item.Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := &DefaultService{Repo: seededRepo()}

	assert.Len(t, svc.Search("GANESH"), 2)
	assert.Len(t, svc.Search("GaNeSh"), 2)
}

func TestSearchMatchesDescriptionAndCategory(t *testing.T) {
	svc := &DefaultService{Repo: seededRepo()}

	results := svc.Search("hymn")
	require.Len(t, results, 1)
	assert.Equal(t, "Shiva Tandava Stotram", results[0].Mantra.Title)

	results = svc.Search("idols")
	require.Len(t, results, 1)
	assert.Equal(t, "Ganesh Idol", results[0].Item.Name)
}

func TestSearchEmptyQuerySkipsFetch(t *testing.T) {
	repo := seededRepo()
	svc := &DefaultService{Repo: repo}

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("   "))
	assert.Zero(t, repo.mantraFetches)
	assert.Zero(t, repo.itemFetches)
}

func TestSearchNoMatches(t *testing.T) {
	svc := &DefaultService{Repo: seededRepo()}

	results := svc.Search("krishna")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchFetchFailureDegradesToEmpty(t *testing.T) {
	repo := seededRepo()
	repo.itemsErr = errors.New("mongo down")
	svc := &DefaultService{Repo: repo}

	// A failed fetch on either collection empties the whole result.
	assert.Empty(t, svc.Search("ganesh"))
}

func TestBrowseDegradesToEmptyOnError(t *testing.T) {
	repo := seededRepo()
	repo.mantrasErr = errors.New("mongo down")
	repo.itemsErr = errors.New("mongo down")
	svc := &DefaultService{Repo: repo}

	mantras := svc.Mantras()
	assert.NotNil(t, mantras)
	assert.Empty(t, mantras)

	items := svc.ServiceItems()
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBrowseReturnsStoredOrder(t *testing.T) {
	svc := &DefaultService{Repo: seededRepo()}

	mantras := svc.Mantras()
	require.Len(t, mantras, 2)
	assert.Equal(t, "Ganesh Mantra", mantras[0].Title)

	items := svc.ServiceItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Puja Thali Set", items[1].Name)
}
