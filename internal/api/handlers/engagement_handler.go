package handlers

import (
	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/engagement"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EngagementHandler interface {
		LikeRecipe(c *fiber.Ctx) error
		UnlikeRecipe(c *fiber.Ctx) error
		FavoriteRecipe(c *fiber.Ctx) error
		UnfavoriteRecipe(c *fiber.Ctx) error
		FollowUser(c *fiber.Ctx) error
		UnfollowUser(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
	}

	engagementHandler struct {
		engagementService engagement.EngagementService
		validator         *validator.Validate
	}
)

func NewEngagementHandler(engagementService engagement.EngagementService, validator *validator.Validate) EngagementHandler {
	return &engagementHandler{
		engagementService: engagementService,
		validator:         validator,
	}
}

func (h *engagementHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.LikeRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return recipePairError(c, domain.MessageFailedLike, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLike)
}

func (h *engagementHandler) UnlikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.UnlikeRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return recipePairError(c, domain.MessageFailedUnlike, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlike)
}

func (h *engagementHandler) FavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.FavoriteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return recipePairError(c, domain.MessageFailedFavorite, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessFavorite)
}

func (h *engagementHandler) UnfavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.UnfavoriteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return recipePairError(c, domain.MessageFailedUnfavorite, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnfavorite)
}

func (h *engagementHandler) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.FollowUser(c.Context(), userID, c.Params("id")); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedFollow, err)
		case domain.ErrSelfFollow:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFollow, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFollow, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessFollow)
}

func (h *engagementHandler) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.engagementService.UnfollowUser(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnfollow, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnfollow)
}

func (h *engagementHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.engagementService.AddComment(c.Context(), c.Params("id"), userID, *req)
	if err != nil {
		return recipePairError(c, domain.MessageFailedAddComment, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *engagementHandler) GetComments(c *fiber.Ctx) error {
	res, err := h.engagementService.ListComments(c.Context(), c.Params("id"))
	if err != nil {
		return recipePairError(c, domain.MessageFailedGetComments, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func recipePairError(c *fiber.Ctx, message string, err error) error {
	if err == domain.ErrRecipeNotFound {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
}
