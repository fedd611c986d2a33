package domain

// MemberSearchCondition - фильтр поиска участников.
// Пустая строка и nil означают "фильтр не задан".
// Нижняя граница больше верхней не считается ошибкой: такой поиск просто ничего не находит.
type MemberSearchCondition struct {
	Username string
	TeamName string
	AgeGoe   *int
	AgeLoe   *int
}

// IsEmpty сообщает, что ни один фильтр не задан.
func (c MemberSearchCondition) IsEmpty() bool {
	return c.Username == "" && c.TeamName == "" && c.AgeGoe == nil && c.AgeLoe == nil
}

// IntPtr - хелпер для заполнения границ возраста.
func IntPtr(v int) *int {
	return &v
}
