package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/logger"
	"github.com/fsdevblog/groph-cards/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-cards/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-cards/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CardsHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCardService *mocks.MockCardServicer
	jwtSecret       []byte
	jwtToken        string
	currentUserID   int64
}

func TestCardsHandlerSuite(t *testing.T) {
	suite.Run(t, new(CardsHandlerTestSuite))
}

func (s *CardsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockCardService = mocks.NewMockCardServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(s.currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtToken = jwtToken

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		CardService:  s.mockCardService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *CardsHandlerTestSuite) makeRequest(method, url string, body []byte, authorized bool) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if body != nil {
		args.Body = bytes.NewReader(body)
	}
	var reqOpts []func(*testutils.RequestOptions)
	if authorized {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", "Bearer "+s.jwtToken))
	}
	reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))

	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *CardsHandlerTestSuite) TestCreateCard() {
	number := "4000000000000001"
	expirationDate := time.Now().AddDate(3, 0, 0).Truncate(24 * time.Hour)

	saved := domain.Card{
		ID:             1,
		UserID:         s.currentUserID,
		Number:         number,
		ExpirationDate: expirationDate,
		Status:         domain.CardStatusActive,
		Balance:        decimal.Zero,
	}

	s.mockCardService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&saved, nil)
	s.mockCardService.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInvalidCardNumber)
	s.mockCardService.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	dateStr := expirationDate.Format(dateLayout)

	cases := []struct {
		name       string
		payload    map[string]any
		authorized bool
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    map[string]any{"number": number, "expiration_date": dateStr},
			authorized: true,
			wantStatus: http.StatusCreated,
		}, {
			name:       "invalid number",
			payload:    map[string]any{"number": "123", "expiration_date": dateStr},
			authorized: true,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "duplicate number",
			payload:    map[string]any{"number": number, "expiration_date": dateStr},
			authorized: true,
			wantStatus: http.StatusConflict,
		}, {
			name:       "malformed date",
			payload:    map[string]any{"number": number, "expiration_date": "31-12-2030"},
			authorized: true,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "not authorized",
			payload:    map[string]any{"number": number, "expiration_date": dateStr},
			authorized: false,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(t.payload)
			s.Require().NoError(marshalErr)

			res := s.makeRequest(http.MethodPost, RouteGroup+CardsRoute, body, t.authorized)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var response CardResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				// Наружу уходит только замаскированный номер.
				s.True(strings.HasPrefix(response.Number, "**** **** **** "))
				s.True(strings.HasSuffix(response.Number, number[len(number)-4:]))
				s.NotContains(response.Number, number)
			}
		})
	}
}

func (s *CardsHandlerTestSuite) TestShowCard() {
	ownCard := domain.Card{
		ID:             1,
		UserID:         s.currentUserID,
		Number:         "4000000000000001",
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		Status:         domain.CardStatusActive,
		Balance:        decimal.RequireFromString("99.90"),
	}
	foreignCard := domain.Card{ID: 5, UserID: 2}

	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&ownCard, nil).AnyTimes()
	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&foreignCard, nil).AnyTimes()
	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound).AnyTimes()

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "own card", url: "/api/cards/1", wantStatus: http.StatusOK},
		{name: "foreign card", url: "/api/cards/5", wantStatus: http.StatusForbidden},
		{name: "unknown card", url: "/api/cards/99", wantStatus: http.StatusNotFound},
		{name: "malformed id", url: "/api/cards/abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodGet, t.url, nil, true)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response CardResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal("**** **** **** 0001", response.Number)
				s.InDelta(99.90, response.Balance, 0.001)
			}
		})
	}
}

func (s *CardsHandlerTestSuite) TestBlockCard() {
	ownCard := domain.Card{
		ID:             1,
		UserID:         s.currentUserID,
		Number:         "4000000000000001",
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		Status:         domain.CardStatusActive,
	}
	blocked := ownCard
	blocked.Status = domain.CardStatusBlocked

	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&ownCard, nil)
	s.mockCardService.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.CardStatusBlocked).
		Return(&blocked, nil)

	res := s.makeRequest(http.MethodPost, "/api/cards/1/block", nil, true)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response CardResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Equal(domain.CardStatusBlocked, response.Status)
}

func (s *CardsHandlerTestSuite) TestCardBalance() {
	ownCard := domain.Card{
		ID:      1,
		UserID:  s.currentUserID,
		Balance: decimal.RequireFromString("150.25"),
	}

	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&ownCard, nil)

	res := s.makeRequest(http.MethodGet, "/api/cards/1/balance", nil, true)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response CardBalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.EqualValues(1, response.CardID)
	s.InDelta(150.25, response.Balance, 0.001)
}

func (s *CardsHandlerTestSuite) TestIndexCards() {
	cards := []domain.Card{
		{ID: 1, UserID: s.currentUserID, Number: "4000000000000001", Balance: decimal.NewFromInt(10)},
		{ID: 2, UserID: s.currentUserID, Number: "4000000000000002", Balance: decimal.NewFromInt(20)},
	}

	s.mockCardService.EXPECT().GetByUserID(gomock.Any(), s.currentUserID).Return(cards, nil)

	res := s.makeRequest(http.MethodGet, RouteGroup+CardsRoute, nil, true)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response []CardResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Len(response, 2)
	s.Equal("**** **** **** 0001", response[0].Number)
	s.Equal("**** **** **** 0002", response[1].Number)
}

func (s *CardsHandlerTestSuite) TestUpdateCardExpiration() {
	ownCard := domain.Card{
		ID:             1,
		UserID:         s.currentUserID,
		Number:         "4000000000000001",
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		Status:         domain.CardStatusActive,
	}
	newDate := time.Now().AddDate(4, 0, 0).Truncate(24 * time.Hour)
	prolonged := ownCard
	prolonged.ExpirationDate = newDate

	s.mockCardService.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&ownCard, nil).Times(2)
	s.mockCardService.EXPECT().
		UpdateExpiration(gomock.Any(), int64(1), gomock.Any()).
		Return(&prolonged, nil)
	s.mockCardService.EXPECT().
		UpdateExpiration(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, domain.ErrExpirationDateInPast)

	cases := []struct {
		name       string
		date       string
		wantStatus int
	}{
		{name: "prolonged", date: newDate.Format(dateLayout), wantStatus: http.StatusOK},
		{name: "date in past", date: "2000-01-01", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(map[string]string{"expiration_date": t.date})
			s.Require().NoError(marshalErr)

			res := s.makeRequest(http.MethodPut, "/api/cards/1", body, true)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
