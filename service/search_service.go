package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	model "github.com/kavyansh10/GraminSetu/models"

	"github.com/elastic/go-elasticsearch/v8"
)

const peopleIndex = "people"

// SearchService mirrors person records into Elasticsearch. The mirror is
// optional: with no ELASTICSEARCH_URL configured the client stays nil,
// indexing becomes a no-op and searches report the service as unavailable.
type SearchService struct {
	esClient *elasticsearch.Client
}

func NewSearchService() *SearchService {
	esURL := os.Getenv("ELASTICSEARCH_URL")
	var esClient *elasticsearch.Client
	if esURL != "" {
		var err error
		esClient, err = elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{esURL},
		})
		if err != nil {
			log.Printf("Warning: Failed to create Elasticsearch client: %v", err)
		}
	}
	return &SearchService{esClient: esClient}
}

// Enabled reports whether a search backend is configured.
func (s *SearchService) Enabled() bool {
	return s != nil && s.esClient != nil
}

// IndexPerson upserts the person document in the search index. Index
// failures are logged and swallowed: the database row is the source of
// truth and the mirror can be rebuilt.
func (s *SearchService) IndexPerson(person *model.Person) {
	if !s.Enabled() {
		return
	}
	doc := map[string]interface{}{
		"full_name":   person.FullName,
		"village":     person.Village,
		"branch":      person.Branch,
		"risk_status": person.RiskStatus,
		"notes":       person.Notes,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[IndexPerson] Error marshaling person %s: %v", person.ID, err)
		return
	}
	res, err := s.esClient.Index(
		peopleIndex,
		bytes.NewReader(body),
		s.esClient.Index.WithDocumentID(person.ID),
		s.esClient.Index.WithContext(context.Background()),
	)
	if err != nil {
		log.Printf("[IndexPerson] Error indexing person %s: %v", person.ID, err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("[IndexPerson] Elasticsearch rejected person %s: %s", person.ID, res.String())
	}
}

// SearchPeople runs a multi_match over the mirrored person fields, filtered
// to the caller's branch.
func (s *SearchService) SearchPeople(branch, query string) ([]map[string]interface{}, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("search is not configured")
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"full_name", "village", "notes"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"branch": branch},
				},
			},
		},
	}
	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(context.Background()),
		s.esClient.Search.WithIndex(peopleIndex),
		s.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search failed: %s", res.String())
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hitsMap, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits structure in search response")
	}
	hitsArray, ok := hitsMap["hits"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits array in search response")
	}

	var people []map[string]interface{}
	for _, hit := range hitsArray {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hitMap["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := hitMap["_id"].(string); ok {
			source["id"] = id
		}
		people = append(people, source)
	}
	return people, nil
}
