package dto

type CountdownInput struct {
	Minutes int
	Label   string
	Quote   string
	Author  string
}

type CountdownOutput struct {
	Label     string
	Minutes   int
	Completed bool
	Ticks     int
}
