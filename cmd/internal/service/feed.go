package service

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"slices"
	"sort"
)

type PostRequest struct {
	MediaType string `json:"mediaType"`
	Media     string `json:"src" validate:"required"`
	Caption   string `json:"caption" validate:"max=2000"`
}

type CommentRequest struct {
	FirstName string `json:"firstName" validate:"max=80"`
	LastName  string `json:"lastName" validate:"max=80"`
	Text      string `json:"text" validate:"required,max=1000"`
}

// LikeState is the outcome of a like toggle for this device.
type LikeState struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ListPosts returns all posts, newest first.
func (s *Store) ListPosts() []*entity.Post {
	posts := slices.Clone(s.current().Posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts
}

// AddPost publishes an image or video and returns its id.
func (s *Store) AddPost(req *PostRequest) (string, apierror.ErrorResponse) {
	if req.MediaType != entity.MediaImage && req.MediaType != entity.MediaVideo {
		return "", apierror.UnsupportedMediaError
	}
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return "", apierror.FromValidationError(err)
	}

	doc := s.current()
	post := &entity.Post{
		ID:        utils.NewID(),
		MediaType: req.MediaType,
		Media:     req.Media,
		Caption:   req.Caption,
		CreatedAt: s.now(),
		Likes:     0,
		LikedBy:   map[string]bool{},
		Comments:  []*entity.Comment{},
	}
	doc.Posts = append(doc.Posts, post)
	if apierr := s.Save(doc); apierr != nil {
		return "", apierr
	}
	return post.ID, nil
}

// ToggleLike likes or un-likes the post on behalf of this device. A nil
// state with no error means the post does not exist.
func (s *Store) ToggleLike(postID string) (*LikeState, apierror.ErrorResponse) {
	device, apierr := s.DeviceID()
	if apierr != nil {
		return nil, apierr
	}

	doc := s.current()
	post := doc.FindPost(postID)
	if post == nil {
		return nil, nil
	}

	if post.LikedBy[device] {
		delete(post.LikedBy, device)
		post.Likes = max(0, post.Likes-1)
	} else {
		post.LikedBy[device] = true
		post.Likes++
	}

	if apierr := s.Save(doc); apierr != nil {
		return nil, apierr
	}
	return &LikeState{Likes: post.Likes, Liked: post.LikedBy[device]}, nil
}

// IsLikedByMe reports whether this device likes the post; false when the
// post does not exist.
func (s *Store) IsLikedByMe(postID string) bool {
	device, apierr := s.DeviceID()
	if apierr != nil {
		return false
	}
	post := s.current().FindPost(postID)
	return post != nil && post.LikedBy[device]
}

// AddComment appends a comment and reports whether the post exists.
func (s *Store) AddComment(postID string, req *CommentRequest) (bool, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return false, apierror.FromValidationError(err)
	}

	doc := s.current()
	post := doc.FindPost(postID)
	if post == nil {
		return false, nil
	}

	post.Comments = append(post.Comments, &entity.Comment{
		ID:        utils.NewID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Text:      req.Text,
		CreatedAt: s.now(),
	})
	if apierr := s.Save(doc); apierr != nil {
		return false, apierr
	}
	return true, nil
}

// DeletePost reports whether a post was removed. Nothing is written when
// the id is unknown.
func (s *Store) DeletePost(postID string) (bool, apierror.ErrorResponse) {
	doc := s.current()
	before := len(doc.Posts)
	doc.Posts = slices.DeleteFunc(doc.Posts, func(p *entity.Post) bool { return p.ID == postID })
	if len(doc.Posts) == before {
		return false, nil
	}
	if apierr := s.Save(doc); apierr != nil {
		return false, apierr
	}
	return true, nil
}

func (s *Store) DeleteComment(postID, commentID string) (bool, apierror.ErrorResponse) {
	doc := s.current()
	post := doc.FindPost(postID)
	if post == nil {
		return false, nil
	}

	before := len(post.Comments)
	post.Comments = slices.DeleteFunc(post.Comments, func(c *entity.Comment) bool { return c.ID == commentID })
	if len(post.Comments) == before {
		return false, nil
	}
	if apierr := s.Save(doc); apierr != nil {
		return false, apierr
	}
	return true, nil
}
