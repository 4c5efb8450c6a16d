package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinews/internal/domain"
)

func TestDateRangeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.DateRange("").Valid())
	assert.True(t, domain.DateRangeDay.Valid())
	assert.True(t, domain.DateRangeWeek.Valid())
	assert.True(t, domain.DateRangeMonth.Valid())
	assert.True(t, domain.DateRangeYear.Valid())

	assert.False(t, domain.DateRange("decade").Valid())
	assert.False(t, domain.DateRange("DAY").Valid())
}

func TestCategoryValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.Category("").Valid())
	assert.True(t, domain.CategoryBusiness.Valid())
	assert.True(t, domain.CategoryNews.Valid())

	assert.False(t, domain.Category("chuyen-muc-la").Valid())
}
