package routes

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/service"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type FeedService interface {
	DeviceID() (string, apierror.ErrorResponse)
	ListPosts() []*entity.Post
	AddPost(req *service.PostRequest) (string, apierror.ErrorResponse)
	ToggleLike(postID string) (*service.LikeState, apierror.ErrorResponse)
	IsLikedByMe(postID string) bool
	AddComment(postID string, req *service.CommentRequest) (bool, apierror.ErrorResponse)
	DeletePost(postID string) (bool, apierror.ErrorResponse)
	DeleteComment(postID, commentID string) (bool, apierror.ErrorResponse)
}

type PostResponse struct {
	ID        string             `json:"id"`
	MediaType string             `json:"mediaType"`
	Media     string             `json:"src"`
	Caption   string             `json:"caption"`
	CreatedAt string             `json:"createdAt"`
	Likes     int                `json:"likes"`
	LikedByMe bool               `json:"likedByMe"`
	Comments  []*CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type DefaultFeedRoute struct {
	FeedService FeedService
}

func NewFeedDefault(feedService FeedService) *DefaultFeedRoute {
	return &DefaultFeedRoute{FeedService: feedService}
}

func (f *DefaultFeedRoute) GetPosts(c echo.Context) error {
	device, apierr := f.FeedService.DeviceID()
	if apierr != nil {
		return fail(c, apierr)
	}

	posts := f.FeedService.ListPosts()
	resp := make([]*PostResponse, len(posts))
	for i, p := range posts {
		resp[i] = toPostResponse(p, device)
	}
	return c.JSON(http.StatusOK, &echo.Map{"posts": resp})
}

func (f *DefaultFeedRoute) CreatePost(c echo.Context) error {
	var req service.PostRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apierror.MalformedBodyError)
	}

	id, apierr := f.FeedService.AddPost(&req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, &echo.Map{"id": id})
}

func (f *DefaultFeedRoute) ToggleLike(c echo.Context) error {
	state, apierr := f.FeedService.ToggleLike(c.Param("id"))
	if apierr != nil {
		return fail(c, apierr)
	}
	if state == nil {
		return fail(c, apierror.NotFoundError)
	}
	return c.JSON(http.StatusOK, state)
}

func (f *DefaultFeedRoute) GetLike(c echo.Context) error {
	return c.JSON(http.StatusOK, &echo.Map{"liked": f.FeedService.IsLikedByMe(c.Param("id"))})
}

func (f *DefaultFeedRoute) CreateComment(c echo.Context) error {
	var req service.CommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apierror.MalformedBodyError)
	}

	found, apierr := f.FeedService.AddComment(c.Param("id"), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	if !found {
		return fail(c, apierror.NotFoundError)
	}
	return c.NoContent(http.StatusCreated)
}

func (f *DefaultFeedRoute) DeletePost(c echo.Context) error {
	removed, apierr := f.FeedService.DeletePost(c.Param("id"))
	if apierr != nil {
		return fail(c, apierr)
	}
	if !removed {
		return fail(c, apierror.NotFoundError)
	}
	return c.NoContent(http.StatusOK)
}

func (f *DefaultFeedRoute) DeleteComment(c echo.Context) error {
	removed, apierr := f.FeedService.DeleteComment(c.Param("id"), c.Param("commentId"))
	if apierr != nil {
		return fail(c, apierr)
	}
	if !removed {
		return fail(c, apierror.NotFoundError)
	}
	return c.NoContent(http.StatusOK)
}

func toPostResponse(p *entity.Post, device string) *PostResponse {
	comments := make([]*CommentResponse, len(p.Comments))
	for i, cm := range p.Comments {
		comments[i] = &CommentResponse{
			ID:        cm.ID,
			FirstName: cm.FirstName,
			LastName:  cm.LastName,
			Text:      cm.Text,
			CreatedAt: utils.FormatEpoch(cm.CreatedAt),
		}
	}
	return &PostResponse{
		ID:        p.ID,
		MediaType: p.MediaType,
		Media:     p.Media,
		Caption:   p.Caption,
		CreatedAt: utils.FormatEpoch(p.CreatedAt),
		Likes:     p.Likes,
		LikedByMe: p.LikedBy[device],
		Comments:  comments,
	}
}
