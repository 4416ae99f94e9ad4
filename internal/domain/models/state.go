package models

// AppState полное состояние приложения, которое сохраняется и попадает в резервную копию
type AppState struct {
	Albums        []Album
	Theme         AppTheme
	Customization HomeCustomization
	CustomFont    string
}

// DefaultAppState возвращает состояние нового приложения
func DefaultAppState() AppState {
	return AppState{
		Albums:        []Album{},
		Theme:         DefaultTheme(),
		Customization: DefaultHomeCustomization(),
	}
}

// Clone возвращает глубокую копию состояния
func (s AppState) Clone() AppState {
	out := AppState{
		Albums:        make([]Album, len(s.Albums)),
		Theme:         s.Theme,
		Customization: s.Customization.Normalize(),
		CustomFont:    s.CustomFont,
	}
	for i, album := range s.Albums {
		out.Albums[i] = album.Clone()
	}

	return out
}
