package buyerhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/services/bidflow"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *bidflow.MockIBidFlowService) {
	gin.SetMode(gin.TestMode)
	svc := bidflow.NewMockIBidFlowService(gomock.NewController(t))
	r := gin.New()
	New(svc).Register(r)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestPlaceBid(t *testing.T) {
	r, svc := newRouter(t)

	want := models.Buyer{FirstName: "Johnny", LastName: "Walker", Pin: 560001, Phone: "9876543210", Email: "johnny@example.com"}
	saved := want
	saved.ID = 3
	svc.EXPECT().PlaceBid(gomock.Any(), want, int64(101), "150").
		Return(&models.Bid{ID: 11, ProductID: 101, BidAmount: "150", BuyerID: 3}, &saved, nil)

	rec := serve(r, http.MethodPost, BasePath+"/place-bid", `{
		"bidRequest": {"productId": 101, "bidAmount": "150"},
		"buyerRequest": {"firstName": "Johnny", "lastName": "Walker", "pin": 560001,
		                 "phone": "9876543210", "email": "johnny@example.com"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out PlaceBidResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, int64(11), out.Bid.ID)
	assert.Equal(t, int64(3), out.Buyer.ID)
}

func TestPlaceBid_MalformedBody(t *testing.T) {
	r, _ := newRouter(t)

	rec := serve(r, http.MethodPost, BasePath+"/place-bid", `{"bidRequest":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceBid_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid_data", apperrors.InvalidData("first name must be 5 to 30 characters"), http.StatusBadRequest},
		{"not_found", apperrors.NotFound("product 101 not found"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("bid already placed"), http.StatusConflict},
		{"closed", apperrors.InvalidOperation("bid end date has passed"), http.StatusUnprocessableEntity},
		{"technical", apperrors.Technical(errors.New("pg down")), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			svc.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, tc.err)

			rec := serve(r, http.MethodPost, BasePath+"/place-bid", `{"bidRequest":{"productId":101,"bidAmount":"150"},"buyerRequest":{}}`)
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.err.Error(), decodeError(t, rec))
		})
	}
}

func TestUpdateBid(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().AmendBid(gomock.Any(), "johnny@example.com", int64(101), "200").
		Return(&models.Bid{ID: 11, ProductID: 101, BidAmount: "200", BuyerID: 3}, nil)

	rec := serve(r, http.MethodPut, BasePath+"/update-bid/101/johnny@example.com/200", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out models.Bid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "200", out.BidAmount)
}

func TestUpdateBid_BadProductID(t *testing.T) {
	r, _ := newRouter(t)

	rec := serve(r, http.MethodPut, BasePath+"/update-bid/abc/johnny@example.com/200", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "productId must be an integer", decodeError(t, rec))
}

func TestShowBids(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().ListBids(gomock.Any()).Return([]models.Bid{{ID: 1}, {ID: 2}}, nil)
	svc.EXPECT().ListBidsForProduct(gomock.Any(), int64(101)).Return([]models.BidWithBuyer{
		{ID: 1, ProductID: 101, BidAmount: "150", Buyer: &models.Buyer{ID: 3}},
	}, nil)
	svc.EXPECT().ListBidsForBuyer(gomock.Any(), int64(3)).Return([]models.Bid{{ID: 1, BuyerID: 3}}, nil)

	rec := serve(r, http.MethodGet, BasePath+"/show-bids", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Bid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = serve(r, http.MethodGet, BasePath+"/show-bids/101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var joined []models.BidWithBuyer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &joined))
	require.Len(t, joined, 1)
	assert.Equal(t, int64(3), joined[0].Buyer.ID)

	rec = serve(r, http.MethodGet, BasePath+"/show-bids/buyer/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Bid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}

func TestShowBids_Failure(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().ListBids(gomock.Any()).Return(nil, apperrors.Technical(errors.New("pg down")))

	rec := serve(r, http.MethodGet, BasePath+"/show-bids", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBidHistory(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().BidHistory(gomock.Any(), int64(11)).Return(nil, nil)

	rec := serve(r, http.MethodGet, BasePath+"/bid-history/11", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
