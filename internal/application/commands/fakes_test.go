package commands

import (
	"encoding/json"
	"fmt"

	"zotsync/internal/application"
	"zotsync/internal/domain"
)

// fakeLibrary implements ports.Library in memory and records every call.
type fakeLibrary struct {
	items     map[string]*domain.Item
	fetchErr  map[string]error
	updateErr map[string]error
	tagged    domain.KeySet
	taggedErr error

	fetched []string
	updated []string
}

func newFakeLibrary(items ...*domain.Item) *fakeLibrary {
	f := &fakeLibrary{
		items:     make(map[string]*domain.Item),
		fetchErr:  make(map[string]error),
		updateErr: make(map[string]error),
		tagged:    domain.NewKeySet(),
	}
	for _, item := range items {
		f.items[item.Key] = item
	}
	return f
}

func (f *fakeLibrary) KeysWithTag(tag string) (domain.KeySet, error) {
	if f.taggedErr != nil {
		return nil, f.taggedErr
	}
	return f.tagged, nil
}

func (f *fakeLibrary) Item(key string) (*domain.Item, error) {
	f.fetched = append(f.fetched, key)
	if err := f.fetchErr[key]; err != nil {
		return nil, err
	}
	item, ok := f.items[key]
	if !ok {
		return nil, fmt.Errorf("item %s not found", key)
	}
	// Hand out a copy, as a remote fetch would.
	cp := *item
	cp.Data.Tags = append([]domain.Tag(nil), item.Data.Tags...)
	return &cp, nil
}

func (f *fakeLibrary) UpdateItem(item *domain.Item) error {
	f.updated = append(f.updated, item.Key)
	if err := f.updateErr[item.Key]; err != nil {
		return err
	}
	stored := *item
	f.items[item.Key] = &stored
	return nil
}

func libraryItem(key, title string, tags ...string) *domain.Item {
	var tagList []domain.Tag
	for _, t := range tags {
		tagList = append(tagList, domain.Tag{Tag: t})
	}
	rawTitle, _ := json.Marshal(title)
	return &domain.Item{
		Key:     key,
		Version: 1,
		Data: domain.ItemData{
			Key:     key,
			Version: 1,
			Tags:    tagList,
			Fields:  map[string]json.RawMessage{"title": rawTitle},
		},
	}
}

// fakeSource implements ports.GraphSource.
type fakeSource struct {
	keys         domain.KeySet
	keysErr      error
	defaultGraph string
	defaultErr   error

	queried []string
}

func (f *fakeSource) ItemKeys(graphName string) (domain.KeySet, error) {
	f.queried = append(f.queried, graphName)
	if f.keysErr != nil {
		return nil, f.keysErr
	}
	return f.keys, nil
}

func (f *fakeSource) DefaultGraph() (string, error) {
	if f.defaultErr != nil {
		return "", f.defaultErr
	}
	return f.defaultGraph, nil
}

// fakeSecretStore implements ports.SecretStore.
type fakeSecretStore struct {
	values map[string]string
	setErr error
}

func (f *fakeSecretStore) Get(name string) (string, error) {
	v, ok := f.values[name]
	if !ok || v == "" {
		return "", application.ErrMissingCredentials
	}
	return v, nil
}

func (f *fakeSecretStore) Set(name, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[name] = value
	return nil
}
