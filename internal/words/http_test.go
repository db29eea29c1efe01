package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/termgames/internal/hangman"
	"github.com/stretchr/testify/suite"
)

type HTTPSupplierTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	requests []*http.Request
	supplier Supplier
}

func (s *HTTPSupplierTestSuite) SetupTest() {
	s.requests = nil
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["gopher"]`))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r)
		s.handler(w, r)
	}))

	supplier, err := NewHTTP(&Config{
		BaseURL: s.server.URL + "/word",
		Timeout: 2 * time.Second,
	})
	s.Require().NoError(err)
	s.supplier = supplier
}

func (s *HTTPSupplierTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHTTPSupplierTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPSupplierTestSuite))
}

func (s *HTTPSupplierTestSuite) randomWord() (*RandomWordOutput, error) {
	return s.supplier.RandomWord(context.Background(), &RandomWordInput{
		Difficulty: hangman.DifficultyMedium,
	})
}

func (s *HTTPSupplierTestSuite) TestRandomWord_HappyPath() {
	output, err := s.randomWord()

	s.Require().NoError(err)
	s.Equal("gopher", output.Word)
	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodGet, s.requests[0].Method)
	s.Equal("/word", s.requests[0].URL.Path)
	s.Equal("1", s.requests[0].URL.Query().Get("number"))
}

func (s *HTTPSupplierTestSuite) TestRandomWord_TakesFirstAndLowercases() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[" Ferris ", "crab"]`))
	}

	output, err := s.randomWord()

	s.Require().NoError(err)
	s.Equal("ferris", output.Word)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_EmptyArray() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}

	output, err := s.randomWord()

	s.ErrorIs(err, ErrEmptyResponse)
	s.Nil(output)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_BlankWord() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["  "]`))
	}

	_, err := s.randomWord()

	s.ErrorIs(err, ErrEmptyResponse)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_BadStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	output, err := s.randomWord()

	s.ErrorIs(err, ErrUnexpectedStatus)
	s.Contains(err.Error(), "503")
	s.Nil(output)
	s.Len(s.requests, 1)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_UndecodableBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"word": "gopher"}`))
	}

	output, err := s.randomWord()

	s.Error(err)
	s.Contains(err.Error(), "failed to decode word response")
	s.Nil(output)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_NetworkFailure() {
	s.server.Close()

	output, err := s.randomWord()

	s.Error(err)
	s.Contains(err.Error(), "failed to fetch word")
	s.Nil(output)
}

func (s *HTTPSupplierTestSuite) TestRandomWord_NilInput() {
	_, err := s.supplier.RandomWord(context.Background(), nil)

	s.ErrorIs(err, ErrNilInput)
	s.Empty(s.requests)
}

func (s *HTTPSupplierTestSuite) TestNewHTTP_Defaults() {
	_, err := NewHTTP(nil)
	s.ErrorIs(err, ErrNilConfig)

	supplier, err := NewHTTP(&Config{})
	s.Require().NoError(err)
	s.Equal(DefaultBaseURL, supplier.baseURL)
	s.Equal(defaultTimeout, supplier.client.Timeout)
}
