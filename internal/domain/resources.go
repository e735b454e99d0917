// AngelaMos | 2026
// resources.go

package domain

type ResourceKind string

const (
	ResourceSpotify ResourceKind = "spotify"
	ResourceYouTube ResourceKind = "youtube"
	ResourceWeb     ResourceKind = "web"
)

type ResourceLink struct {
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Kind ResourceKind `json:"type"`
}

// CategoryResources is the companion material offered alongside a task.
type CategoryResources struct {
	Category Category       `json:"category"`
	Title    string         `json:"title"`
	Links    []ResourceLink `json:"links"`
}

var categoryResources = map[Category]CategoryResources{
	CategorySports: {
		Title: "Energy & Rhythm",
		Links: []ResourceLink{
			{"Workout Hits", "https://open.spotify.com/playlist/37i9dQZF1DX76Wlfdnj7AP", ResourceSpotify},
			{"Running Music", "https://www.youtube.com/results?search_query=running+music+motivation", ResourceYouTube},
			{"Fitness Revolucionario Podcast", "https://fitnessrevolucionario.com/podcast/", ResourceWeb},
		},
	},
	CategoryWork: {
		Title: "Deep Focus Mode",
		Links: []ResourceLink{
			{"Deep Focus Playlist", "https://open.spotify.com/playlist/37i9dQZF1DWZeKCadgRdKQ", ResourceSpotify},
			{"Pomodoro Timer", "https://pomofocus.io/", ResourceWeb},
			{"Office White Noise", "https://www.youtube.com/watch?v=2Z7g9B5xNls", ResourceYouTube},
		},
	},
	CategoryEducation: {
		Title: "Study Zone",
		Links: []ResourceLink{
			{"Lofi Hip Hop Radio", "https://www.youtube.com/watch?v=jfKfPfyJRdk", ResourceYouTube},
			{"Classical Music for Reading", "https://open.spotify.com/playlist/37i9dQZF1DWWEJlAGA9gs0", ResourceSpotify},
			{"Khan Academy", "https://www.khanacademy.org/", ResourceWeb},
		},
	},
	CategoryNutrition: {
		Title: "Cooking & Health",
		Links: []ResourceLink{
			{"Health Podcasts", "https://open.spotify.com/genre/podcasts-web", ResourceSpotify},
			{"15 Minute Healthy Recipes", "https://www.youtube.com/results?search_query=healthy+recipes+15+minutes", ResourceYouTube},
		},
	},
	CategoryEmotional: {
		Title: "Inner Peace",
		Links: []ResourceLink{
			{"10 Minute Guided Meditation", "https://www.youtube.com/results?search_query=guided+meditation+10+minutes", ResourceYouTube},
			{"Rain Sounds", "https://open.spotify.com/playlist/37i9dQZF1DX8ymr6UES7ae", ResourceSpotify},
		},
	},
	CategoryHome: {
		Title: "Happy Home",
		Links: []ResourceLink{
			{"Cleaning Beats", "https://open.spotify.com/playlist/37i9dQZF1DX1tW4GkYCEx7", ResourceSpotify},
			{"Audiobooks", "https://www.audible.com/", ResourceWeb},
		},
	},
	CategoryFinance: {
		Title: "Clear Finances",
		Links: []ResourceLink{
			{"Neurona Financiera Podcast", "https://neuronafinanciera.com/", ResourceWeb},
			{"Smooth Background Jazz", "https://www.youtube.com/watch?v=Dx5qFachd3A", ResourceYouTube},
		},
	},
	CategoryGrowth: {
		Title: "Personal Growth",
		Links: []ResourceLink{
			{"TED Talks", "https://www.youtube.com/user/TEDtalksDirector", ResourceYouTube},
			{"Books for Entrepreneurs Podcast", "https://librosparaemprendedores.net/", ResourceWeb},
		},
	},
	CategoryPersonal: {
		Title: "Time for Me",
		Links: []ResourceLink{
			{"Top 50 Global", "https://open.spotify.com/playlist/37i9dQZEVXbMDoHDwVN2tF", ResourceSpotify},
			{"Entiende tu Mente Podcast", "https://open.spotify.com/show/0rOatMAdzQyPvw6tXW7aCj", ResourceSpotify},
		},
	},
}

// Resources returns a copy of the catalog entry for c. ok is false for
// unknown categories.
func Resources(c Category) (CategoryResources, bool) {
	r, ok := categoryResources[c]
	if !ok {
		return CategoryResources{}, false
	}
	r.Category = c
	r.Links = append([]ResourceLink(nil), r.Links...)
	return r, true
}
