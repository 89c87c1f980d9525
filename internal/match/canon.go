package match

// canonEntry is one row of the built-in canon list.
type canonEntry struct {
	rank  int
	title string
	year  int
}

// canon is the American Film Institute "100 Years...100 Movies" list (1998).
var canon = [...]canonEntry{
	{1, "Citizen Kane", 1941},
	{2, "Casablanca", 1942},
	{3, "The Godfather", 1972},
	{4, "Gone with the Wind", 1939},
	{5, "Lawrence of Arabia", 1962},
	{6, "The Wizard of Oz", 1939},
	{7, "The Graduate", 1967},
	{8, "On the Waterfront", 1954},
	{9, "Schindler's List", 1993},
	{10, "Singin' in the Rain", 1952},
	{11, "It's a Wonderful Life", 1946},
	{12, "Sunset Boulevard", 1950},
	{13, "The Bridge on the River Kwai", 1957},
	{14, "Some Like It Hot", 1959},
	{15, "Star Wars", 1977},
	{16, "All About Eve", 1950},
	{17, "The African Queen", 1951},
	{18, "Psycho", 1960},
	{19, "Chinatown", 1974},
	{20, "One Flew Over the Cuckoo's Nest", 1975},
	{21, "The Grapes of Wrath", 1940},
	{22, "2001: A Space Odyssey", 1968},
	{23, "The Maltese Falcon", 1941},
	{24, "Raging Bull", 1980},
	{25, "E.T. the Extra-Terrestrial", 1982},
	{26, "Dr. Strangelove", 1964},
	{27, "Bonnie and Clyde", 1967},
	{28, "Apocalypse Now", 1979},
	{29, "Mr. Smith Goes to Washington", 1939},
	{30, "The Treasure of the Sierra Madre", 1948},
	{31, "Annie Hall", 1977},
	{32, "The Godfather Part II", 1974},
	{33, "High Noon", 1952},
	{34, "To Kill a Mockingbird", 1962},
	{35, "It Happened One Night", 1934},
	{36, "Midnight Cowboy", 1969},
	{37, "The Best Years of Our Lives", 1946},
	{38, "Double Indemnity", 1944},
	{39, "Doctor Zhivago", 1965},
	{40, "North by Northwest", 1959},
	{41, "West Side Story", 1961},
	{42, "Rear Window", 1954},
	{43, "King Kong", 1933},
	{44, "The Birth of a Nation", 1915},
	{45, "A Streetcar Named Desire", 1951},
	{46, "A Clockwork Orange", 1971},
	{47, "Taxi Driver", 1976},
	{48, "Jaws", 1975},
	{49, "Snow White and the Seven Dwarfs", 1937},
	{50, "Butch Cassidy and the Sundance Kid", 1969},
	{51, "The Philadelphia Story", 1940},
	{52, "From Here to Eternity", 1953},
	{53, "Amadeus", 1984},
	{54, "All Quiet on the Western Front", 1930},
	{55, "The Sound of Music", 1965},
	{56, "M*A*S*H", 1970},
	{57, "The Third Man", 1949},
	{58, "Fantasia", 1940},
	{59, "Rebel Without a Cause", 1955},
	{60, "Raiders of the Lost Ark", 1981},
	{61, "Vertigo", 1958},
	{62, "Tootsie", 1982},
	{63, "Stagecoach", 1939},
	{64, "Close Encounters of the Third Kind", 1977},
	{65, "The Silence of the Lambs", 1991},
	{66, "Network", 1976},
	{67, "The Manchurian Candidate", 1962},
	{68, "An American in Paris", 1951},
	{69, "Shane", 1953},
	{70, "The French Connection", 1971},
	{71, "Forrest Gump", 1994},
	{72, "Ben-Hur", 1959},
	{73, "Wuthering Heights", 1939},
	{74, "The Gold Rush", 1925},
	{75, "Dances with Wolves", 1990},
	{76, "City Lights", 1931},
	{77, "American Graffiti", 1973},
	{78, "Rocky", 1976},
	{79, "The Deer Hunter", 1978},
	{80, "The Wild Bunch", 1969},
	{81, "Modern Times", 1936},
	{82, "Giant", 1956},
	{83, "Platoon", 1986},
	{84, "Fargo", 1996},
	{85, "Duck Soup", 1933},
	{86, "Mutiny on the Bounty", 1935},
	{87, "Frankenstein", 1931},
	{88, "Easy Rider", 1969},
	{89, "Patton", 1970},
	{90, "The Jazz Singer", 1927},
	{91, "My Fair Lady", 1964},
	{92, "A Place in the Sun", 1951},
	{93, "The Apartment", 1960},
	{94, "Goodfellas", 1990},
	{95, "Pulp Fiction", 1994},
	{96, "The Searchers", 1956},
	{97, "Bringing Up Baby", 1938},
	{98, "Unforgiven", 1992},
	{99, "Guess Who's Coming to Dinner", 1967},
	{100, "Yankee Doodle Dandy", 1942},
}

// Canon returns the built-in 100-title canon list in rank order. The slice
// is freshly allocated on each call.
func Canon() []Reference {
	out := make([]Reference, len(canon))
	for i, c := range canon {
		year := c.year
		out[i] = Reference{Rank: c.rank, Title: c.title, Year: &year}
	}
	return out
}
