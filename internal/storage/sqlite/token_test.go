package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type TokenStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	db    *sqlx.DB
	store *TokenStore
}

func (s *TokenStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "session.db")

	db, err := Open(s.path)
	s.Require().NoError(err)
	s.db = db
	s.store = NewTokenStore(db)
}

func (s *TokenStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func TestTokenStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

func (s *TokenStoreTestSuite) TestGetEmpty() {
	token, err := s.store.Get(s.ctx)
	s.NoError(err)
	s.Equal("", token)
}

func (s *TokenStoreTestSuite) TestSetAndGet() {
	s.Require().NoError(s.store.Set(s.ctx, "tok1"))

	token, err := s.store.Get(s.ctx)
	s.NoError(err)
	s.Equal("tok1", token)
}

func (s *TokenStoreTestSuite) TestSetOverwrites() {
	s.Require().NoError(s.store.Set(s.ctx, "tok1"))
	s.Require().NoError(s.store.Set(s.ctx, "tok2"))

	token, err := s.store.Get(s.ctx)
	s.NoError(err)
	s.Equal("tok2", token)
}

func (s *TokenStoreTestSuite) TestSetRejectsEmpty() {
	s.Error(s.store.Set(s.ctx, ""))
}

func (s *TokenStoreTestSuite) TestClearIsIdempotent() {
	s.Require().NoError(s.store.Clear(s.ctx))

	s.Require().NoError(s.store.Set(s.ctx, "tok1"))
	s.Require().NoError(s.store.Clear(s.ctx))
	s.Require().NoError(s.store.Clear(s.ctx))

	token, err := s.store.Get(s.ctx)
	s.NoError(err)
	s.Equal("", token)
}

func (s *TokenStoreTestSuite) TestSurvivesReopen() {
	s.Require().NoError(s.store.Set(s.ctx, "tok1"))
	s.Require().NoError(s.db.Close())

	db, err := Open(s.path)
	s.Require().NoError(err)
	s.db = db

	token, err := NewTokenStore(db).Get(s.ctx)
	s.NoError(err)
	s.Equal("tok1", token)
}
