package models

// Lesson is a single unit of learning-hub content.
type Lesson struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tips    []string `json:"tips"`
}

// LearningModule groups related lessons under one topic.
type LearningModule struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Lessons []Lesson `json:"lessons"`
}

// LearningProgress maps module id to lesson id to completion. Absence means
// not completed; entries are only ever set to true.
type LearningProgress map[string]map[string]bool

// Completed reports whether the given lesson has been finished.
func (p LearningProgress) Completed(moduleID, lessonID string) bool {
	return p[moduleID][lessonID]
}

// ModuleProgress summarizes completion of one module for display.
type ModuleProgress struct {
	ModuleID  string  `json:"moduleId"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}
