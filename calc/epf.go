package calc

// EPFParams drives an Employees' Provident Fund projection. Rates are
// fractions (0.12 for 12%).
type EPFParams struct {
	MonthlyBasic       float64
	Years              int
	AnnualInterestRate float64
	AnnualIncrement    float64
	EmployeeRate       float64
	EmployerRate       float64
	PensionRate        float64
	PensionableCeiling float64
	OpeningBalance     float64
}

// EPFYear is one financial year of contributions and credited interest.
type EPFYear struct {
	Year                 int
	MonthlyBasic         float64
	EmployeeContribution float64
	EmployerContribution float64
	PensionContribution  float64
	Interest             float64
	ClosingBalance       float64
}

// EPFResult totals a projection. Pension (EPS) contributions are diverted
// from the employer share and do not enter the corpus.
type EPFResult struct {
	Years         []EPFYear
	Corpus        float64
	TotalEmployee float64
	TotalEmployer float64
	TotalPension  float64
	TotalInterest float64
}

// EPFProjection accrues contributions month by month. The pension share is
// PensionRate of the basic salary capped at PensionableCeiling; the employer
// EPF share is what remains of EmployerRate. Interest is computed on the sum
// of monthly running balances at AnnualInterestRate/12 and credited at year
// end. The basic salary grows by AnnualIncrement at the start of each
// following year.
func EPFProjection(p EPFParams) (EPFResult, bool) {
	if !finite(p.MonthlyBasic, p.AnnualInterestRate, p.AnnualIncrement, p.EmployeeRate,
		p.EmployerRate, p.PensionRate, p.PensionableCeiling, p.OpeningBalance) {
		return EPFResult{}, false
	}
	if p.MonthlyBasic <= 0 || p.Years <= 0 || p.AnnualInterestRate < 0 || p.AnnualIncrement < 0 {
		return EPFResult{}, false
	}
	if p.EmployeeRate <= 0 || p.EmployerRate < 0 || p.PensionRate < 0 || p.OpeningBalance < 0 {
		return EPFResult{}, false
	}

	res := EPFResult{Years: make([]EPFYear, 0, p.Years)}
	balance := p.OpeningBalance
	basic := p.MonthlyBasic

	for y := 1; y <= p.Years; y++ {
		employee := basic * p.EmployeeRate
		pension := Clamp(basic, p.PensionableCeiling) * p.PensionRate
		employer := basic*p.EmployerRate - pension
		if employer < 0 {
			pension += employer
			employer = 0
		}

		year := EPFYear{Year: y, MonthlyBasic: basic}
		running := 0.0
		for m := 0; m < 12; m++ {
			balance += employee + employer
			running += balance
			year.EmployeeContribution += employee
			year.EmployerContribution += employer
			year.PensionContribution += pension
		}
		year.Interest = running * p.AnnualInterestRate / 12
		balance += year.Interest
		year.ClosingBalance = balance

		res.TotalEmployee += year.EmployeeContribution
		res.TotalEmployer += year.EmployerContribution
		res.TotalPension += year.PensionContribution
		res.TotalInterest += year.Interest
		res.Years = append(res.Years, year)

		basic *= 1 + p.AnnualIncrement
	}

	res.Corpus = balance
	return res, true
}
