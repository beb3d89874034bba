package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/twtrd/twtrd/middleware"
	"github.com/twtrd/twtrd/models"
	"github.com/twtrd/twtrd/repositories"
	"github.com/twtrd/twtrd/utils"
	"github.com/twtrd/twtrd/validation"
	"github.com/twtrd/twtrd/views"
)

const (
	tweetCachePrefix = "cache:tweets:"
	tweetCacheTTL    = time.Hour
)

// TweetController manages listing and creation of tweets.
type TweetController struct {
	users *repositories.UserRepository
	posts *repositories.PostRepository
}

// NewTweetController creates a TweetController.
func NewTweetController(users *repositories.UserRepository, posts *repositories.PostRepository) *TweetController {
	return &TweetController{users: users, posts: posts}
}

// authorJSON is the reduced author view embedded in tweet responses.
type authorJSON struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type tweetJSON struct {
	ID        uint       `json:"id"`
	Text      string     `json:"text"`
	Author    authorJSON `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
}

func tweetResponse(post models.Post) tweetJSON {
	return tweetJSON{
		ID:        post.ID,
		Text:      post.Text,
		Author:    authorJSON{ID: post.Author.ID, Username: post.Author.Username},
		CreatedAt: post.CreatedAt,
	}
}

func tweetListResponse(posts []models.Post) []tweetJSON {
	out := make([]tweetJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, tweetResponse(p))
	}
	return out
}

// List returns all tweets, newest first. Lookup failures degrade to an empty
// list instead of a 500; that lenient contract is intentional.
func (t *TweetController) List(ctx *gin.Context) {
	cacheKey := tweetCachePrefix + "list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	posts, err := t.posts.ListAll()
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("tweet listing failed, returning empty list: %v", err)
		}
		ctx.JSON(http.StatusOK, []tweetJSON{})
		return
	}

	payload := tweetListResponse(posts)
	utils.CacheSetJSON(cacheKey, payload, tweetCacheTTL)
	ctx.JSON(http.StatusOK, payload)
}

// ListByUser returns one user's tweets, newest first. A missing user is a
// 404; a failing post lookup degrades to an empty list.
func (t *TweetController) ListByUser(ctx *gin.Context) {
	userID, err := parseID(ctx.Param("userId"))
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("User not found", "No user found with that id"))
		return
	}
	user, err := t.users.FindByID(userID)
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("User not found", "No user found with that id"))
		return
	}

	cacheKey := tweetCachePrefix + "user:" + strconv.Itoa(int(user.ID))
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	posts, err := t.posts.ListByAuthor(user.ID)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("user tweet listing failed for user %d, returning empty list: %v", user.ID, err)
		}
		ctx.JSON(http.StatusOK, []tweetJSON{})
		return
	}

	payload := tweetListResponse(posts)
	utils.CacheSetJSON(cacheKey, payload, tweetCacheTTL)
	ctx.JSON(http.StatusOK, payload)
}

// Get returns a single tweet with its author populated.
func (t *TweetController) Get(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("Tweet not found", "No tweet found with that id"))
		return
	}

	cacheKey := tweetCachePrefix + "detail:" + strconv.Itoa(int(id))
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	post, err := t.posts.FindByID(id)
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("Tweet not found", "No tweet found with that id"))
		return
	}

	payload := tweetResponse(*post)
	utils.CacheSetJSON(cacheKey, payload, tweetCacheTTL)
	ctx.JSON(http.StatusOK, payload)
}

// Create stores a new tweet authored by the current user and returns it with
// the author populated.
func (t *TweetController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.RespondError(ctx, utils.NewUnauthorizedError())
		return
	}

	var input validation.TweetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.RespondError(ctx, utils.NewValidationError(map[string]string{"body": "Invalid request payload"}))
		return
	}
	if ok, errs := validation.ValidateTweetInput(input); !ok {
		utils.RespondError(ctx, utils.NewValidationError(errs))
		return
	}

	post := models.Post{
		Text:     utils.Sanitize(strings.TrimSpace(input.Text)),
		AuthorID: user.ID,
	}
	if err := t.posts.Create(&post); err != nil {
		utils.RespondError(ctx, err)
		return
	}
	post.Author = *user

	utils.InvalidateByPrefix(tweetCachePrefix)

	ctx.JSON(http.StatusOK, tweetResponse(post))
}

// ShowPage renders the minimal HTML view of a single tweet.
func (t *TweetController) ShowPage(ctx *gin.Context) {
	post, ok := t.lookup(ctx)
	if !ok {
		return
	}

	ctx.Status(http.StatusOK)
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderTweetPage(ctx.Writer, post.Text, post.Author.Username); err != nil && utils.Sugar != nil {
		utils.Sugar.Errorf("tweet page render failed: %v", err)
	}
}

func (t *TweetController) lookup(ctx *gin.Context) (*models.Post, bool) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("Tweet not found", "No tweet found with that id"))
		return nil, false
	}
	post, err := t.posts.FindByID(id)
	if err != nil {
		utils.RespondError(ctx, utils.NewNotFoundError("Tweet not found", "No tweet found with that id"))
		return nil, false
	}
	return post, true
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
