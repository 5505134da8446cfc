// Package http wires the HTTP surface to the domain services.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"charforge/internal/domain"
	"charforge/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	characters service.CharacterService
	tokens     *service.TokenManager
	loginTTL   time.Duration
	logger     *logrus.Logger
}

func NewHandler(
	users service.UserService,
	characters service.CharacterService,
	tokens *service.TokenManager,
	loginTTL time.Duration,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:      users,
		characters: characters,
		tokens:     tokens,
		loginTTL:   loginTTL,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
	router.Use(requestLogger(h.logger))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/token", h.login)
	}

	user := router.Group("/user")
	{
		user.POST("/register", h.register)
		user.GET("/me", h.authRequired(), h.me)
		user.DELETE("/me", h.authRequired(), h.deleteMe)
	}

	character := router.Group("/character", h.authRequired())
	{
		character.POST("/generate", h.generateCharacter)
		character.POST("/", h.saveCharacter)
		character.GET("/", h.listCharacters)
		character.GET("/:id", h.getCharacter)
		character.PATCH("/:id", h.updateCharacter)
		character.DELETE("/:id", h.deleteCharacter)
	}
}

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.Username, h.loginTTL)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(currentUser(c)))
}

func (h *Handler) deleteMe(c *gin.Context) {
	if _, err := h.users.Delete(c.Request.Context(), currentUser(c).ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type generateRequest struct {
	Race   domain.Race   `json:"race" binding:"required,oneof=human elf dwarf"`
	Gender domain.Gender `json:"gender" binding:"required,oneof=male female nonbinary"`
}

// characterPayload is the representation of a character's own fields, shared
// by generated (unpersisted) and stored characters.
type characterPayload struct {
	Name      string        `json:"name"`
	Race      domain.Race   `json:"race"`
	Gender    domain.Gender `json:"gender"`
	Backstory string        `json:"backstory"`
	StatStr   int           `json:"stat_str"`
	StatDex   int           `json:"stat_dex"`
	StatCon   int           `json:"stat_con"`
	StatInt   int           `json:"stat_int"`
	StatWis   int           `json:"stat_wis"`
	StatCha   int           `json:"stat_cha"`
}

type characterResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	characterPayload
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *Handler) generateCharacter(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	character, err := h.characters.Generate(c.Request.Context(), req.Race, req.Gender)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characterToPayload(*character))
}

type saveCharacterRequest struct {
	Name      string        `json:"name" binding:"required"`
	Race      domain.Race   `json:"race" binding:"required,oneof=human elf dwarf"`
	Gender    domain.Gender `json:"gender" binding:"required,oneof=male female nonbinary"`
	Backstory string        `json:"backstory"`
	StatStr   *int          `json:"stat_str" binding:"omitempty,min=3,max=18"`
	StatDex   *int          `json:"stat_dex" binding:"omitempty,min=3,max=18"`
	StatCon   *int          `json:"stat_con" binding:"omitempty,min=3,max=18"`
	StatInt   *int          `json:"stat_int" binding:"omitempty,min=3,max=18"`
	StatWis   *int          `json:"stat_wis" binding:"omitempty,min=3,max=18"`
	StatCha   *int          `json:"stat_cha" binding:"omitempty,min=3,max=18"`
}

func (h *Handler) saveCharacter(c *gin.Context) {
	var req saveCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	character := &domain.Character{
		Name:      req.Name,
		Race:      req.Race,
		Gender:    req.Gender,
		Backstory: req.Backstory,
		StatStr:   statOrDefault(req.StatStr),
		StatDex:   statOrDefault(req.StatDex),
		StatCon:   statOrDefault(req.StatCon),
		StatInt:   statOrDefault(req.StatInt),
		StatWis:   statOrDefault(req.StatWis),
		StatCha:   statOrDefault(req.StatCha),
	}

	saved, err := h.characters.Save(c.Request.Context(), character, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, characterToResponse(*saved))
}

func (h *Handler) listCharacters(c *gin.Context) {
	characters, err := h.characters.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]characterResponse, len(characters))
	for i := range characters {
		resp[i] = characterToResponse(characters[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	character, err := h.characters.Get(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characterToResponse(*character))
}

type updateCharacterRequest struct {
	Name      *string        `json:"name"`
	Race      *domain.Race   `json:"race" binding:"omitempty,oneof=human elf dwarf"`
	Gender    *domain.Gender `json:"gender" binding:"omitempty,oneof=male female nonbinary"`
	Backstory *string        `json:"backstory"`
	StatStr   *int           `json:"stat_str" binding:"omitempty,min=3,max=18"`
	StatDex   *int           `json:"stat_dex" binding:"omitempty,min=3,max=18"`
	StatCon   *int           `json:"stat_con" binding:"omitempty,min=3,max=18"`
	StatInt   *int           `json:"stat_int" binding:"omitempty,min=3,max=18"`
	StatWis   *int           `json:"stat_wis" binding:"omitempty,min=3,max=18"`
	StatCha   *int           `json:"stat_cha" binding:"omitempty,min=3,max=18"`
}

func (h *Handler) updateCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	var req updateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := domain.CharacterUpdate{
		Name:      req.Name,
		Race:      req.Race,
		Gender:    req.Gender,
		Backstory: req.Backstory,
		StatStr:   req.StatStr,
		StatDex:   req.StatDex,
		StatCon:   req.StatCon,
		StatInt:   req.StatInt,
		StatWis:   req.StatWis,
		StatCha:   req.StatCha,
	}

	character, err := h.characters.Update(c.Request.Context(), id, currentUser(c).ID, update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characterToResponse(*character))
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	deleted, err := h.characters.Delete(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func characterID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid character id"})
		return 0, false
	}
	return id, true
}

func statOrDefault(v *int) int {
	if v == nil {
		return 10
	}
	return *v
}

func userToResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func characterToPayload(character domain.Character) characterPayload {
	return characterPayload{
		Name:      character.Name,
		Race:      character.Race,
		Gender:    character.Gender,
		Backstory: character.Backstory,
		StatStr:   character.StatStr,
		StatDex:   character.StatDex,
		StatCon:   character.StatCon,
		StatInt:   character.StatInt,
		StatWis:   character.StatWis,
		StatCha:   character.StatCha,
	}
}

func characterToResponse(character domain.Character) characterResponse {
	return characterResponse{
		ID:               character.ID,
		UserID:           character.UserID,
		characterPayload: characterToPayload(character),
		CreatedAt:        character.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        character.UpdatedAt.Format(time.RFC3339),
	}
}
