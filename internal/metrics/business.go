package metrics

// IncrementCategoryCreated increments category creation counter
func (m *Metrics) IncrementCategoryCreated() {
	m.safeExecute("IncrementCategoryCreated", func() {
		m.CategoryCreatedTotal.Inc()
	})
}

// IncrementCategoryUpdated increments category update counter
func (m *Metrics) IncrementCategoryUpdated() {
	m.safeExecute("IncrementCategoryUpdated", func() {
		m.CategoryUpdatedTotal.Inc()
	})
}

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementProjectUpdated increments project update counter
func (m *Metrics) IncrementProjectUpdated() {
	m.safeExecute("IncrementProjectUpdated", func() {
		m.ProjectUpdatedTotal.Inc()
	})
}

// IncrementImageUploaded increments the upload counter for an entity type
func (m *Metrics) IncrementImageUploaded(entityType string) {
	m.safeExecute("IncrementImageUploaded", func() {
		m.ImagesUploadedTotal.WithLabelValues(entityType).Inc()
	})
}

// AddUploadsCleaned adds to the expired upload cleanup counter
func (m *Metrics) AddUploadsCleaned(count int) {
	m.safeExecute("AddUploadsCleaned", func() {
		m.UploadsCleanedTotal.Add(float64(count))
	})
}

// SetCategoriesTotal sets total categories gauge
func (m *Metrics) SetCategoriesTotal(count int64) {
	m.safeExecute("SetCategoriesTotal", func() {
		m.CategoriesTotal.Set(float64(count))
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetEditSessionsActive sets the active edit sessions gauge
func (m *Metrics) SetEditSessionsActive(count int) {
	m.safeExecute("SetEditSessionsActive", func() {
		m.EditSessionsActive.Set(float64(count))
	})
}
