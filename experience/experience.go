package experience

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/experiences
func CreateExperience(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var exp models.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if exp.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	exp.ExperienceID = utils.GenerateRandomString(13)
	exp.PartnerID = userID
	exp.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ExperiencesCollection.InsertOne(ctx, exp); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting experience")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, exp)
}

// GET /api/experiences/:id
func GetExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var exp models.Experience
	err := db.ExperiencesCollection.FindOne(ctx, bson.M{"experienceid": ps.ByName("id")}).Decode(&exp)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Experience not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, exp)
}
