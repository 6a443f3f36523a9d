package usecase

import (
	postdomain "postbase-backend/internal/post/domain"
	postdto "postbase-backend/internal/post/dto"
	"postbase-backend/internal/post/repository"
	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/paging"
)

// postUsecase implements PostUsecase.
type postUsecase struct {
	posts repository.PostRepository
}

func NewPostUsecase(posts repository.PostRepository) PostUsecase {
	return &postUsecase{
		posts: posts,
	}
}

func (u *postUsecase) List(opts repository.ListOptions) ([]postdomain.Post, paging.Result, error) {
	if u.posts == nil {
		return nil, paging.Result{}, apperror.ErrDatabaseNotConfigured
	}

	posts, total, err := u.posts.List(opts)
	if err != nil {
		return nil, paging.Result{}, apperror.Internal("Failed to fetch posts", err)
	}
	return posts, paging.NewResult(opts.Paging, total), nil
}

func (u *postUsecase) GetByID(id string) (*postdomain.Post, error) {
	if u.posts == nil {
		return nil, apperror.ErrDatabaseNotConfigured
	}

	post, err := u.posts.FindByID(id)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch post", err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}
	return post, nil
}

func (u *postUsecase) Create(authorID string, req *postdto.CreatePostRequest) (*postdomain.Post, error) {
	if u.posts == nil {
		return nil, apperror.ErrDatabaseNotConfigured
	}

	post := &postdomain.Post{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		AuthorID:  authorID,
	}
	if err := u.posts.Create(post); err != nil {
		return nil, apperror.Internal("Failed to create post", err)
	}
	return post, nil
}

func (u *postUsecase) Update(id, callerID string, req *postdto.UpdatePostRequest) (*postdomain.Post, error) {
	post, err := u.owned(id, callerID, "Not authorized to update this post")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := u.posts.Update(post); err != nil {
		return nil, apperror.Internal("Failed to update post", err)
	}
	return post, nil
}

func (u *postUsecase) Delete(id, callerID string) error {
	if _, err := u.owned(id, callerID, "Not authorized to delete this post"); err != nil {
		return err
	}

	if err := u.posts.Delete(id); err != nil {
		return apperror.Internal("Failed to delete post", err)
	}
	return nil
}

// owned loads a post and enforces that the caller is its author. Only the
// author may mutate a post; there is no admin override.
func (u *postUsecase) owned(id, callerID, forbiddenMessage string) (*postdomain.Post, error) {
	post, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, apperror.Forbidden(forbiddenMessage)
	}
	return post, nil
}
