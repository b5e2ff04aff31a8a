package browse

// fallbackItems is served when the movie directory cannot be reached.
var fallbackItems = []ResultItem{
	{Title: "Inception", Year: "2010", Poster: "https://m.media-amazon.com/images/M/MV5BMmYxYzAyZTUt.jpg", Type: "movie", IMDbID: "tt1375666"},
	{Title: "The Dark Knight", Year: "2008", Poster: "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_SX300.jpg", Type: "movie", IMDbID: "tt0468569"},
	{Title: "Interstellar", Year: "2014", Poster: "https://m.media-amazon.com/images/M/MV5BNjViNWY3MTMt.jpg", Type: "movie", IMDbID: "tt0816692"},
	{Title: "The Matrix", Year: "1999", Poster: "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAt.jpg", Type: "movie", IMDbID: "tt0133093"},
	{Title: "Mad Max: Fury Road", Year: "2015", Poster: "https://m.media-amazon.com/images/M/MV5BMjI4NDY5NTk0OF5BMl5BanBnXkFtZTgwODczMDE1NTE@._V1_SX300.jpg", Type: "movie", IMDbID: "tt1392190"},
}

// FallbackItems returns a copy of the offline dataset, in its fixed order.
func FallbackItems() []ResultItem {
	items := make([]ResultItem, len(fallbackItems))
	copy(items, fallbackItems)
	return withKeys(items, 0)
}
