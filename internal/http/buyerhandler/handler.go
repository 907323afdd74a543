package buyerhandler

import (
	"net/http"
	"strconv"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/services/bidflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const BasePath = "/e-auction/api/v1/buyer"

type Handler struct {
	svc bidflow.IBidFlowService
}

func New(svc bidflow.IBidFlowService) *Handler { return &Handler{svc: svc} }

func (h *Handler) Register(r gin.IRouter) {
	g := r.Group(BasePath)
	g.GET("/show-bids", h.listBids)
	g.GET("/show-bids/:productId", h.listBidsForProduct)
	g.GET("/show-bids/buyer/:buyerId", h.listBidsForBuyer)
	g.POST("/place-bid", h.placeBid)
	g.PUT("/update-bid/:productId/:buyerEmailId/:newBidAmount", h.updateBid)
	g.GET("/bid-history/:bidId", h.bidHistory)
}

func fail(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("buyer_api", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be an integer"})
		return 0, false
	}
	return id, true
}

// @Summary		Show all bids
// @Tags			Bids
// @Success		200	{array}		models.Bid
// @Failure		500	{object}	ErrorResponse
// @Router			/show-bids [get]
func (h *Handler) listBids(c *gin.Context) {
	out, err := h.svc.ListBids(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Show bids for a product
// @Description	Each bid carries its buyer.
// @Tags			Bids
// @Param			productId	path		int	true	"Product ID"	default(101)
// @Success		200			{array}		models.BidWithBuyer
// @Failure		400			{object}	ErrorResponse
// @Failure		500			{object}	ErrorResponse
// @Router			/show-bids/{productId} [get]
func (h *Handler) listBidsForProduct(c *gin.Context) {
	productID, ok := idParam(c, "productId")
	if !ok {
		return
	}
	out, err := h.svc.ListBidsForProduct(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Show bids of a buyer
// @Tags			Bids
// @Param			buyerId	path		int	true	"Buyer ID"
// @Success		200		{array}		models.Bid
// @Failure		400		{object}	ErrorResponse
// @Failure		500		{object}	ErrorResponse
// @Router			/show-bids/buyer/{buyerId} [get]
func (h *Handler) listBidsForBuyer(c *gin.Context) {
	buyerID, ok := idParam(c, "buyerId")
	if !ok {
		return
	}
	out, err := h.svc.ListBidsForBuyer(c.Request.Context(), buyerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Place a bid
// @Description	Registers the buyer (keyed by email) and places its bid on an open product.
// @Tags			Bids
// @Param			body	body		PlaceBidBody	true	"Bid and buyer payload"
// @Success		200		{object}	PlaceBidResponse
// @Failure		400		{object}	ErrorResponse
// @Failure		404		{object}	ErrorResponse
// @Failure		409		{object}	ErrorResponse
// @Failure		422		{object}	ErrorResponse
// @Failure		500		{object}	ErrorResponse
// @Router			/place-bid [post]
func (h *Handler) placeBid(c *gin.Context) {
	var body PlaceBidBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	placed, owner, err := h.svc.PlaceBid(c.Request.Context(),
		body.BuyerRequest.toBuyer(),
		body.BidRequest.ProductID,
		body.BidRequest.BidAmount,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, PlaceBidResponse{
		Status: "OK",
		Bid:    placed,
		Buyer:  owner,
	})
}

// @Summary		Update a bid amount
// @Tags			Bids
// @Param			productId		path		int		true	"Product ID"	default(101)
// @Param			buyerEmailId	path		string	true	"Buyer email"	default(johnny@example.com)
// @Param			newBidAmount	path		string	true	"New amount"	default(200)
// @Success		200				{object}	models.Bid
// @Failure		400				{object}	ErrorResponse
// @Failure		404				{object}	ErrorResponse
// @Failure		422				{object}	ErrorResponse
// @Failure		500				{object}	ErrorResponse
// @Router			/update-bid/{productId}/{buyerEmailId}/{newBidAmount} [put]
func (h *Handler) updateBid(c *gin.Context) {
	productID, ok := idParam(c, "productId")
	if !ok {
		return
	}
	updated, err := h.svc.AmendBid(c.Request.Context(), c.Param("buyerEmailId"), productID, c.Param("newBidAmount"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary		Bid history
// @Description	Placements and amendments recorded for a bid, oldest first.
// @Tags			Bids
// @Param			bidId	path		int	true	"Bid ID"
// @Success		200		{array}		models.AuditEntry
// @Failure		400		{object}	ErrorResponse
// @Failure		500		{object}	ErrorResponse
// @Router			/bid-history/{bidId} [get]
func (h *Handler) bidHistory(c *gin.Context) {
	bidID, ok := idParam(c, "bidId")
	if !ok {
		return
	}
	out, err := h.svc.BidHistory(c.Request.Context(), bidID)
	if err != nil {
		fail(c, err)
		return
	}
	if out == nil {
		out = []models.AuditEntry{}
	}
	c.JSON(http.StatusOK, out)
}
