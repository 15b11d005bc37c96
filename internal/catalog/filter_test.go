package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{Jobs: []Job{
		{Title: "Data Analyst", Industry: "Finance", ExperienceLevel: "Junior", JobType: "Full-time", Location: "Karachi", Salary: Salary{Amount: 50000, Valid: true}, Skills: "Python, SQL, Excel"},
		{Title: "Backend Engineer", Industry: "Tech", ExperienceLevel: "Senior", JobType: "Full-time", Location: "Lahore", Salary: Salary{Amount: 150000, Valid: true}, Skills: "Go, PostgreSQL, Docker"},
		{Title: "ML Engineer", Industry: "Tech", ExperienceLevel: "Mid", JobType: "Remote", Location: "Karachi", Salary: Salary{Amount: 120000, Valid: true}, Skills: "Python, TensorFlow, ML"},
		{Title: "Office Manager", Industry: "Retail", ExperienceLevel: "Mid", JobType: "Full-time", Location: "Islamabad", Salary: Salary{}, Skills: "Excel, Communication"},
	}}
}

func TestFilterAllFacetsReturnsFullCatalog(t *testing.T) {
	cat := testCatalog()
	// The row with a missing salary fails the (zero) threshold.
	subset, err := cat.Filter(Facets{Industry: All, ExperienceLevel: All, JobType: All, Location: All})
	require.NoError(t, err)
	assert.Len(t, subset, 3)
}

func TestFilterIdentityWhenAllSalariesKnown(t *testing.T) {
	cat := testCatalog()
	cat.Jobs = cat.Jobs[:3] // every remaining row has a known salary
	subset, err := cat.Filter(Facets{Industry: All, ExperienceLevel: All, JobType: All, Location: All})
	require.NoError(t, err)
	assert.Equal(t, cat.Jobs, subset)
}

func TestFilterSingleFacetExactMatch(t *testing.T) {
	cat := testCatalog()
	subset, err := cat.Filter(Facets{Industry: "Tech"})
	require.NoError(t, err)
	require.Len(t, subset, 2)
	for _, j := range subset {
		assert.Equal(t, "Tech", j.Industry)
	}
}

func TestFilterIsCaseSensitive(t *testing.T) {
	cat := testCatalog()
	_, err := cat.Filter(Facets{Industry: "tech"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFilterEmptySelectionMeansAll(t *testing.T) {
	cat := testCatalog()
	subset, err := cat.Filter(Facets{})
	require.NoError(t, err)
	assert.Len(t, subset, 3)
}

func TestFilterCombinesFacets(t *testing.T) {
	cat := testCatalog()
	subset, err := cat.Filter(Facets{Industry: "Tech", Location: "Karachi"})
	require.NoError(t, err)
	require.Len(t, subset, 1)
	assert.Equal(t, "ML Engineer", subset[0].Title)
}

func TestFilterSalaryThreshold(t *testing.T) {
	cat := testCatalog()
	subset, err := cat.Filter(Facets{MinSalary: 100000})
	require.NoError(t, err)
	require.Len(t, subset, 2)
	assert.Equal(t, "Backend Engineer", subset[0].Title)
	assert.Equal(t, "ML Engineer", subset[1].Title)
}

func TestFilterMissingSalaryFailsThreshold(t *testing.T) {
	cat := &Catalog{Jobs: []Job{
		{Title: "Mystery Role", Industry: "Tech", Skills: "Go"},
	}}
	_, err := cat.Filter(Facets{MinSalary: 1})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFilterNoMatchOnHighThreshold(t *testing.T) {
	cat := &Catalog{Jobs: []Job{
		{Title: "Data Analyst", Industry: "Finance", Salary: Salary{Amount: 50000, Valid: true}, Skills: "SQL"},
	}}
	subset, err := cat.Filter(Facets{MinSalary: 60000})
	assert.Nil(t, subset)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	cat := testCatalog()
	subset, err := cat.Filter(Facets{JobType: "Full-time"})
	require.NoError(t, err)
	require.Len(t, subset, 2)
	assert.Equal(t, "Data Analyst", subset[0].Title)
	assert.Equal(t, "Backend Engineer", subset[1].Title)
}

func TestFacetValues(t *testing.T) {
	cat := testCatalog()
	fv := cat.FacetValues()

	assert.Equal(t, []string{"Finance", "Retail", "Tech"}, fv.Industries)
	assert.Equal(t, []string{"Junior", "Mid", "Senior"}, fv.ExperienceLevels)
	assert.Equal(t, []string{"Full-time", "Remote"}, fv.JobTypes)
	assert.Equal(t, []string{"Islamabad", "Karachi", "Lahore"}, fv.Locations)
	assert.Equal(t, 50000.0, fv.MinSalary)
	assert.Equal(t, 150000.0, fv.MaxSalary)
}
