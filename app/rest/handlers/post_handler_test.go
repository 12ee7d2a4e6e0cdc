package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blog-api/app/domain"
	mock_port "blog-api/app/mocks"
)

func newPostHandler(t *testing.T) (*PostHandler, *mock_port.MockPostUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	usecase := mock_port.NewMockPostUsecase(ctrl)
	return NewPostHandler(usecase, testHandlerLogger(t)), usecase
}

func TestPostHandler_CreatePost(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	author := &domain.Author{ID: 1, Name: "Jane Doe", Email: "jane@example.com"}
	created := &domain.Post{ID: 1, Title: "First", Content: "Body", AuthorID: 1, Author: author}
	usecase.EXPECT().
		CreatePost(gomock.Any(), "First", "Body", uint(1)).
		Return(created, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/posts",
		`{"title":"First","content":"Body","author_id":1}`)

	require.NoError(t, handler.CreatePost(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, float64(1), body["author_id"])

	embedded, ok := body["author"].(map[string]interface{})
	require.True(t, ok, "created post should embed its author")
	assert.Equal(t, "jane@example.com", embedded["email"])
}

func TestPostHandler_CreatePost_UnknownAuthor(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().
		CreatePost(gomock.Any(), "First", "Body", uint(99)).
		Return(nil, domain.ErrInvalidAuthorReference)

	c, rec := newJSONContext(e, http.MethodPost, "/posts",
		`{"title":"First","content":"Body","author_id":99}`)

	require.NoError(t, handler.CreatePost(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "INVALID_AUTHOR_REFERENCE", body["code"])
}

func TestPostHandler_CreatePost_MissingFields(t *testing.T) {
	handler, _ := newPostHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/posts", `{"title":"First"}`)

	require.NoError(t, handler.CreatePost(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "content")
	assert.Contains(t, errs, "author_id")
}

func TestPostHandler_ListPosts(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	posts := []*domain.Post{
		{ID: 1, Title: "First", Content: "Body", AuthorID: 1,
			Author: &domain.Author{ID: 1, Name: "Jane Doe", Email: "jane@example.com"}},
	}
	usecase.EXPECT().ListPosts(gomock.Any(), (*uint)(nil)).Return(posts, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/posts", "")

	require.NoError(t, handler.ListPosts(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.NotNil(t, body[0]["author"])
}

func TestPostHandler_ListPosts_FilteredByAuthor(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, authorID *uint) ([]*domain.Post, error) {
			require.NotNil(t, authorID)
			assert.Equal(t, uint(2), *authorID)
			return []*domain.Post{}, nil
		})

	c, rec := newJSONContext(e, http.MethodGet, "/posts?author_id=2", "")

	require.NoError(t, handler.ListPosts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPostHandler_ListPosts_MalformedAuthorID(t *testing.T) {
	handler, _ := newPostHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/posts?author_id=abc", "")

	require.NoError(t, handler.ListPosts(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_GetPost_NotFound(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().GetPostByID(gomock.Any(), uint(99)).Return(nil, domain.ErrPostNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/posts/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, handler.GetPost(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "POST_NOT_FOUND", body["code"])
}

func TestPostHandler_UpdatePost(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	updated := &domain.Post{ID: 1, Title: "Revised", Content: "Body", AuthorID: 1}
	usecase.EXPECT().
		UpdatePost(gomock.Any(), uint(1), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uint, updates domain.PostUpdates) (*domain.Post, error) {
			require.NotNil(t, updates.Title)
			assert.Equal(t, "Revised", *updates.Title)
			assert.Nil(t, updates.Content)
			assert.Nil(t, updates.AuthorID)
			return updated, nil
		})

	c, rec := newJSONContext(e, http.MethodPut, "/posts/1", `{"title":"Revised"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.UpdatePost(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Revised", body["title"])
}

func TestPostHandler_UpdatePost_ReassignUnknownAuthor(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().
		UpdatePost(gomock.Any(), uint(1), gomock.Any()).
		Return(nil, domain.ErrInvalidAuthorReference)

	c, rec := newJSONContext(e, http.MethodPut, "/posts/1", `{"author_id":99}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.UpdatePost(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPostHandler_DeletePost(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().DeletePost(gomock.Any(), uint(1)).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/posts/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.DeletePost(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostHandler_DeletePost_NotFound(t *testing.T) {
	handler, usecase := newPostHandler(t)
	e := newTestEcho()

	usecase.EXPECT().DeletePost(gomock.Any(), uint(99)).Return(domain.ErrPostNotFound)

	c, rec := newJSONContext(e, http.MethodDelete, "/posts/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, handler.DeletePost(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
