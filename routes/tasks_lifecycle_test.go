package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskflow/taskflow/models"
	"taskflow/taskflow/services"
	"taskflow/taskflow/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Exercises the handlers against a real service and an in-memory database,
// end to end through the router.
func TestTaskLifecycle(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	router := gin.Default()
	apiGroup := router.Group("/api")
	RegisterTaskRoutes(apiGroup, db, &services.TaskService{})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		var req *http.Request
		if body != "" {
			req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		} else {
			req, _ = http.NewRequest(method, path, nil)
		}
		router.ServeHTTP(w, req)
		return w
	}

	// Create two tasks.
	w := do("POST", "/api/tasks", `{"title":"Task A","description":"first"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var taskA models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskA))
	assert.Greater(t, taskA.ID, uint(0))

	w = do("POST", "/api/tasks", `{"title":"Task B","description":"second"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var taskB models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskB))

	// Rejected create leaves the list untouched.
	w = do("POST", "/api/tasks", `{"title":"","description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List is newest first.
	w = do("GET", "/api/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
	assert.Equal(t, taskB.ID, tasks[0].ID)
	assert.Equal(t, taskA.ID, tasks[1].ID)

	// Fetch by id.
	w = do("GET", fmt.Sprintf("/api/tasks/%d", taskA.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var fetched models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Task A", fetched.Title)

	// Update changes only title and description.
	w = do("PUT", fmt.Sprintf("/api/tasks/%d", taskA.ID), `{"title":"Task A2","description":"revised"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, taskA.ID, updated.ID)
	assert.Equal(t, "Task A2", updated.Title)
	assert.Equal(t, "revised", updated.Description)

	// Delete, then the id is gone for every verb.
	w = do("DELETE", fmt.Sprintf("/api/tasks/%d", taskA.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, w.Body.String())

	w = do("DELETE", fmt.Sprintf("/api/tasks/%d", taskA.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do("GET", fmt.Sprintf("/api/tasks/%d", taskA.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, w.Body.String())
}
