package services

import (
	"testing"

	model "github.com/kavyansh10/GraminSetu/models"
	"github.com/stretchr/testify/assert"
)

func TestSearchServiceDisabledWithoutURL(t *testing.T) {
	t.Setenv("ELASTICSEARCH_URL", "")
	svc := NewSearchService()

	assert.False(t, svc.Enabled())

	// Indexing is a silent no-op; searching reports the service as absent.
	svc.IndexPerson(&model.Person{ID: "p1", FullName: "Sita Devi"})
	_, err := svc.SearchPeople("Jaipur", "sita")
	assert.Error(t, err)
}

func TestSearchServiceNilReceiver(t *testing.T) {
	var svc *SearchService
	assert.False(t, svc.Enabled())
	svc.IndexPerson(&model.Person{ID: "p1"})
}
