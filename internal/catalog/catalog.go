// Package catalog defines the fixed set of socioeconomic and health
// indicators the atlas serves. The set is enumerated at compile time;
// nothing about an indicator changes after process start.
package catalog

// Key identifies an indicator.
type Key string

const (
	HDI               Key = "hdi"
	GDPPerCapita      Key = "gdp_per_capita"
	GiniIndex         Key = "gini_index"
	LifeExpectancy    Key = "life_expectancy"
	MedianAge         Key = "median_age"
	Population        Key = "population"
	PopulationDensity Key = "population_density"
	AirPollution      Key = "air_pollution"
	HealthInsurance   Key = "health_insurance"
	BirthRate         Key = "birth_rate"
	DeathRate         Key = "death_rate"
	CovidCases        Key = "covid_cases"
	CovidDeaths       Key = "covid_deaths"
)

// Category is one of the four fixed headings the country snapshot report
// groups indicators under.
type Category string

const (
	CategoryEconomy    Category = "Economy & Development"
	CategoryHealth     Category = "Health & Longevity"
	CategoryPopulation Category = "Population & Environment"
	CategoryVital      Category = "Births, Deaths & COVID"
)

// Indicator is the static metadata for one indicator key.
type Indicator struct {
	Key        Key
	Column     string // canonical CSV header; matching is case-insensitive
	Label      string
	Unit       string
	Precision  int
	Currency   bool
	Category   Category
	Definition string
}

// The order here is the display order within the snapshot and the dashboard
// KPI panel. Column names follow the cleaned source dataset.
var indicators = []Indicator{
	{HDI, "HDI", "HDI", "", 3, false, CategoryEconomy,
		"The Human Development Index combines life expectancy, education and income into a single score between 0 and 1."},
	{GDPPerCapita, "GDP_per_capita", "GDP per Capita", "$", 1, true, CategoryEconomy,
		"Gross domestic product divided by mid-year population, in current US dollars."},
	{GiniIndex, "Gini_Index", "Gini Index", "", 1, false, CategoryEconomy,
		"A measure of income inequality where 0 is perfect equality and 100 is maximal inequality."},
	{LifeExpectancy, "Life_Expectancy", "Life Expectancy", "Yrs", 1, false, CategoryHealth,
		"The average number of years a newborn is expected to live under current mortality rates."},
	{MedianAge, "Median_Age_Est", "Median Age", "Yrs", 1, false, CategoryHealth,
		"The age that divides the population into two numerically equal halves."},
	{HealthInsurance, "Health_Insurance", "Health Insurance Coverage", "%", 1, false, CategoryHealth,
		"The share of the population covered by public or private health insurance."},
	{Population, "Population", "Population", "", 0, false, CategoryPopulation,
		"The total number of residents regardless of legal status or citizenship."},
	{PopulationDensity, "Population_Density", "Population Density", "per km²", 1, false, CategoryPopulation,
		"The number of residents per square kilometer of land area."},
	{AirPollution, "Air_Pollution", "Air Pollution (PM2.5)", "µg/m³", 1, false, CategoryPopulation,
		"The mean annual concentration of fine particulate matter to which the population is exposed."},
	{BirthRate, "Birth_Rate", "Birth Rate", "per 1,000", 1, false, CategoryVital,
		"The number of live births per 1,000 people per year."},
	{DeathRate, "Death_Rate", "Death Rate", "per 1,000", 1, false, CategoryVital,
		"The number of deaths per 1,000 people per year."},
	{CovidCases, "COVID_Cases", "COVID Cases / mil", "", 0, false, CategoryVital,
		"Cumulative confirmed COVID-19 cases per million people."},
	{CovidDeaths, "COVID_Deaths", "COVID Deaths / mil", "", 0, false, CategoryVital,
		"Cumulative confirmed COVID-19 deaths per million people."},
}

var byKey = func() map[Key]Indicator {
	m := make(map[Key]Indicator, len(indicators))
	for _, ind := range indicators {
		m[ind.Key] = ind
	}
	return m
}()

// All returns every indicator in display order. Callers must not modify the
// returned slice.
func All() []Indicator {
	return indicators
}

// Lookup returns the indicator for a key.
func Lookup(key Key) (Indicator, bool) {
	ind, ok := byKey[key]
	return ind, ok
}

// Categories returns the four snapshot headings in display order.
func Categories() []Category {
	return []Category{CategoryEconomy, CategoryHealth, CategoryPopulation, CategoryVital}
}

// ByCategory returns the indicators under one heading, in display order.
func ByCategory(cat Category) []Indicator {
	var out []Indicator
	for _, ind := range indicators {
		if ind.Category == cat {
			out = append(out, ind)
		}
	}
	return out
}
