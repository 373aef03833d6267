package service

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"barbershop/cmd/internal/utils/validators"
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	DocumentKey = "almog_asaf_barbershop_db_v1"
	DeviceIDKey = "aas_device_id"
)

// Backend is the local key-value storage the document lives in.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store owns the persisted document. Every mutation reads the whole
// document, changes it in memory and writes it back once; concurrent
// writers are last-writer-wins.
type Store struct {
	Backend  Backend
	Validate *validator.Validate
	now      func() int64
}

type Option func(*Store)

// WithClock replaces the millisecond clock used for timestamps.
func WithClock(now func() int64) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(backend Backend, validate *validator.Validate, opts ...Option) *Store {
	if validate == nil {
		validate = validators.New()
	}
	s := &Store{Backend: backend, Validate: validate, now: utils.NowUTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored document. Missing or unreadable data yields a fresh
// empty document; corruption is logged and otherwise ignored.
func (s *Store) Load() *entity.Document {
	raw, found, err := s.Backend.Get(DocumentKey)
	if err != nil {
		log.Warnf("failed to read %s, falling back to an empty document: %v", DocumentKey, err)
		return entity.NewDocument()
	}
	if !found || raw == "" {
		return entity.NewDocument()
	}

	doc, err := decodeDocument([]byte(raw))
	if err != nil {
		log.Warnf("stored document %s is malformed, falling back to an empty document: %v", DocumentKey, err)
		return entity.NewDocument()
	}
	return doc
}

// Ensure loads the document, back-fills missing fields, runs pending
// migrations and persists the result.
func (s *Store) Ensure() (*entity.Document, apierror.ErrorResponse) {
	doc, _ := s.prepare()
	if apierr := s.Save(doc); apierr != nil {
		return nil, apierr
	}
	return doc, nil
}

// Save replaces the stored document with doc.
func (s *Store) Save(doc *entity.Document) apierror.ErrorResponse {
	b, err := json.Marshal(doc)
	if err != nil {
		log.Errorf("failed to encode document: %v", err)
		return apierror.InternalServerError
	}
	if err := s.Backend.Set(DocumentKey, string(b)); err != nil {
		log.Errorf("failed to write %s: %v", DocumentKey, err)
		return apierror.InternalServerError
	}
	return nil
}

// DeviceID returns the identifier of this installation, creating it on
// first use.
func (s *Store) DeviceID() (string, apierror.ErrorResponse) {
	id, found, err := s.Backend.Get(DeviceIDKey)
	if err != nil {
		log.Errorf("failed to read %s: %v", DeviceIDKey, err)
		return "", apierror.InternalServerError
	}
	if found && id != "" {
		return id, nil
	}

	id = utils.NewID()
	if err := s.Backend.Set(DeviceIDKey, id); err != nil {
		log.Errorf("failed to write %s: %v", DeviceIDKey, err)
		return "", apierror.InternalServerError
	}
	return id, nil
}

// current returns the normalized document for callers that save on their
// own. An upgraded document is written back right away so that ids assigned
// by a migration stay the same across reads.
func (s *Store) current() *entity.Document {
	doc, upgraded := s.prepare()
	if upgraded {
		if apierr := s.Save(doc); apierr != nil {
			log.Warnf("failed to persist migrated document, it will be migrated again on the next read: %v", apierr)
		}
	}
	return doc
}

func (s *Store) prepare() (*entity.Document, bool) {
	doc := s.Load()
	normalize(doc)
	return doc, migrate(doc)
}

type storedPost struct {
	entity.Post
	Comments []json.RawMessage `json:"comments"`
}

type storedDocument struct {
	entity.Document
	Posts []*storedPost `json:"posts"`
}

// decodeDocument keeps well-formed comments and drops every comment entry
// that is not a JSON object.
func decodeDocument(raw []byte) (*entity.Document, error) {
	var stored storedDocument
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}

	doc := &stored.Document
	doc.Posts = make([]*entity.Post, 0, len(stored.Posts))
	for _, sp := range stored.Posts {
		if sp == nil {
			continue
		}
		post := sp.Post
		post.Comments = make([]*entity.Comment, 0, len(sp.Comments))
		for _, rc := range sp.Comments {
			if !bytes.HasPrefix(bytes.TrimSpace(rc), []byte("{")) {
				continue
			}
			var c entity.Comment
			if err := json.Unmarshal(rc, &c); err != nil {
				continue
			}
			post.Comments = append(post.Comments, &c)
		}
		doc.Posts = append(doc.Posts, &post)
	}
	return doc, nil
}

func normalize(doc *entity.Document) {
	if doc.Days == nil {
		doc.Days = map[string][]*entity.Appointment{}
	}
	for day, list := range doc.Days {
		kept := list[:0]
		for _, a := range list {
			if a != nil {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(doc.Days, day)
			continue
		}
		doc.Days[day] = kept
	}
	if doc.Availability == nil {
		doc.Availability = map[string]*entity.DayAvailability{}
	}
	if doc.Logs == nil {
		doc.Logs = &entity.Logs{}
	}
	if doc.Logs.Cancellations == nil {
		doc.Logs.Cancellations = []*entity.CancellationRecord{}
	}
	if doc.Perks == nil {
		doc.Perks = map[string]*entity.Person{}
	}
	if doc.PerkCodes == nil {
		doc.PerkCodes = map[string]*entity.PerkCode{}
	}
	if doc.Posts == nil {
		doc.Posts = []*entity.Post{}
	}
	for _, p := range doc.Posts {
		if p.LikedBy == nil {
			p.LikedBy = map[string]bool{}
		}
		if p.Comments == nil {
			p.Comments = []*entity.Comment{}
		}
	}
}

type migration struct {
	version int
	apply   func(doc *entity.Document)
}

// migrations run in order; each brings a document up to its version.
var migrations = []migration{
	{version: 1, apply: assignCommentIDs},
}

// migrate reports whether any migration ran.
func migrate(doc *entity.Document) bool {
	upgraded := false
	for _, m := range migrations {
		if doc.Version < m.version {
			m.apply(doc)
			doc.Version = m.version
			upgraded = true
		}
	}
	return upgraded
}

// assignCommentIDs gives every comment stored before comments had ids a
// stable identifier.
func assignCommentIDs(doc *entity.Document) {
	for _, p := range doc.Posts {
		for _, c := range p.Comments {
			if c.ID == "" {
				c.ID = utils.NewID()
			}
		}
	}
}
