package catalog

import "github.com/scholarbot/scholarbot-api/internal/model"

// FallbackScholarships is the built-in catalog used until a remote sync
// succeeds. 30 verified national awards.
func FallbackScholarships() []model.Scholarship {
	return []model.Scholarship{
		{ID: "a91bc024", Name: "Gates Scholarship", Criteria: "High school seniors from minority backgrounds (African American, Hispanic, Asian/Pacific Islander, Native American). Pell-eligible. Must demonstrate leadership and academic excellence. 3.3+ GPA on 4.0 scale. U.S. citizen, national, or permanent resident.", Link: "https://www.thegatesscholarship.org/", Deadline: "2026-09-15", Amount: "Full Tuition", NeedBased: "Y"},
		{ID: "c7f3e011", Name: "Ron Brown Scholar Program", Criteria: "African American high school seniors. Must demonstrate academic excellence, leadership, and community service. U.S. citizen or permanent resident. Financial need considered.", Link: "https://ronbrown.org/ron-brown-scholarship/", Deadline: "2026-12-01", Amount: "$40,000", NeedBased: "Y"},
		{ID: "e8a2d445", Name: "Coca-Cola Scholars Foundation", Criteria: "High school seniors with leadership in school and community. U.S. citizens, nationals, permanent residents, refugees, or asylees. Must be eligible for federal financial aid. Achievement-based.", Link: "https://www.coca-colascholarsfoundation.org/apply/", Deadline: "2026-09-30", Amount: "$20,000", NeedBased: ""},
		{ID: "f12b9923", Name: "Dell Scholars Program", Criteria: "Must participate in an approved college readiness program. Demonstrate need for financial assistance. GPA of 2.4+. U.S. citizen or permanent resident. Must be a current high school senior.", Link: "https://www.dellscholars.org/", Deadline: "2026-12-01", Amount: "$20,000", NeedBased: "Y"},
		{ID: "b34cd881", Name: "QuestBridge National College Match", Criteria: "High-achieving low-income students. Typically household income under $65,000. Strong academics. High school seniors applying to partner colleges.", Link: "https://www.questbridge.org/", Deadline: "2026-09-26", Amount: "Full Ride", NeedBased: "Y"},
		{ID: "19afe723", Name: "Elks Most Valuable Student Scholarship", Criteria: "U.S. citizen high school senior. Judged on scholarship, leadership, financial need. Must plan to pursue a four-year degree.", Link: "https://www.elks.org/scholars/scholarships/mvs.cfm", Deadline: "2026-11-05", Amount: "$12,500", NeedBased: "Y"},
		{ID: "20bcd561", Name: "Burger King Scholars Program", Criteria: "High school seniors in U.S., Canada, Puerto Rico, or Guam. GPA 2.0+. Demonstrate financial need, work experience, community involvement. Awards range $1,000 to $60,000.", Link: "https://burgerking.scholarsapply.org/", Deadline: "2026-12-15", Amount: "$1,000-$60,000", NeedBased: "Y"},
		{ID: "31def892", Name: "Cameron Impact Scholarship", Criteria: "High school seniors. Demonstrated academic achievement, community involvement, and leadership. U.S. citizens. Plan to attend four-year institution.", Link: "https://www.bryancameroneducationfoundation.org/", Deadline: "2026-09-14", Amount: "Full Tuition", NeedBased: ""},
		{ID: "42eaf123", Name: "Daniels Fund Scholarship", Criteria: "Graduating high school seniors from CO, NM, UT, WY. Demonstrate strength of character, leadership, community service. Financial need.", Link: "https://www.danielsfund.org/scholarships", Deadline: "2026-11-15", Amount: "Full Tuition", NeedBased: "Y"},
		{ID: "53fba234", Name: "UNCF Scholarships", Criteria: "Underrepresented minority students. Multiple scholarship programs available year-round. Must attend an HBCU or other accredited institution.", Link: "https://uncf.org/scholarships", Deadline: "Varies", Amount: "Varies", NeedBased: "Y"},
		{ID: "64acb345", Name: "Hispanic Scholarship Fund", Criteria: "Of Hispanic heritage. U.S. citizen, permanent resident, or DACA eligible. Minimum 3.0 GPA. Plan to enroll full-time in accredited institution.", Link: "https://www.hsf.net/scholarship", Deadline: "2026-02-15", Amount: "$500-$5,000", NeedBased: ""},
		{ID: "75bdc456", Name: "Asian & Pacific Islander American Scholarship (APIASF)", Criteria: "Asian American or Pacific Islander ethnicity. 2.7+ GPA. U.S. citizen, national, permanent resident, or citizen of Freely Associated States. Financial need.", Link: "https://apiascholars.org/", Deadline: "2026-01-11", Amount: "Up to $20,000", NeedBased: "Y"},
		{ID: "eq01ex25", Name: "Equitable Excellence Scholarship", Criteria: "High school senior. U.S. citizen or legal resident in 50 states, D.C., or Puerto Rico. 2.5+ GPA. Demonstrate leadership, determination, and resilience. Formerly AXA Achievement Scholarship.", Link: "https://equitable.com/foundation/equitable-excellence-scholarship", Deadline: "2026-12-18", Amount: "$5,000/yr renewable", NeedBased: ""},
		{ID: "97dfe678", Name: "Horatio Alger Scholarship", Criteria: "High school senior. Demonstrated financial need (family income under $55,000). Minimum 2.0 GPA. Involvement in co-curricular and community activities. U.S. citizen.", Link: "https://scholars.horatioalger.org/", Deadline: "2026-10-25", Amount: "$25,000", NeedBased: "Y"},
		{ID: "a8ef7789", Name: "Jack Kent Cooke Foundation College Scholarship", Criteria: "High school senior with financial need (family income under $95,000). 3.5+ unweighted GPA. Standardized test scores. U.S. citizen or permanent resident.", Link: "https://www.jkcf.org/our-scholarships/", Deadline: "2026-11-18", Amount: "Up to $55,000/yr", NeedBased: "Y"},
		{ID: "b9f0889a", Name: "Posse Foundation Scholarship", Criteria: "Must be nominated by high school. Urban public high school students with extraordinary leadership potential. Full tuition at partner colleges.", Link: "https://www.possefoundation.org/", Deadline: "Nomination Only", Amount: "Full Tuition", NeedBased: ""},
		{ID: "ca01999b", Name: "Regeneron Science Talent Search", Criteria: "High school seniors in the U.S. Must submit original research project in science, math, or engineering. Prestigious STEM competition.", Link: "https://www.societyforscience.org/regeneron-sts/", Deadline: "2026-11-12", Amount: "Up to $250,000", NeedBased: ""},
		{ID: "db12aa0c", Name: "National Merit Scholarship", Criteria: "U.S. high school students. Based on PSAT/NMSQT scores taken in junior year. Must be enrolled or plan to enroll full-time in college.", Link: "https://www.nationalmerit.org/", Deadline: "2026-10-01", Amount: "$2,500+", NeedBased: ""},
		{ID: "ec23bb1d", Name: "Cobell Scholarship (Native American)", Criteria: "Must be enrolled member of a federally recognized tribe. Undergraduate or graduate student. Financial need demonstrated.", Link: "https://cobellscholar.org/", Deadline: "2026-01-31", Amount: "Up to $5,000", NeedBased: "Y"},
		{ID: "fd34cc2e", Name: "NAACP Scholarships", Criteria: "African American students. Must be current NAACP member. Varies by specific scholarship program. Academic merit and financial need considered.", Link: "https://naacp.org/find-resources/scholarships", Deadline: "Varies", Amount: "Varies", NeedBased: "Y"},
		{ID: "0e45dd3f", Name: "Dream.US Scholarship (DREAMers)", Criteria: "DACA or TPS recipients. First-time college students or community college transfers. Financial need. 2.5+ GPA. Must attend a partner college.", Link: "https://www.thedream.us/", Deadline: "2026-02-28", Amount: "Up to $33,000", NeedBased: "Y"},
		{ID: "1f56ee40", Name: "GE-Reagan Foundation Scholarship", Criteria: "High school senior. U.S. citizen. Demonstrate leadership, drive, integrity, and citizenship. 3.0+ GPA. $20,000 renewable scholarship.", Link: "https://www.reaganfoundation.org/education/scholarship-programs/", Deadline: "2026-01-05", Amount: "$10,000/yr renewable", NeedBased: ""},
		{ID: "3b780062", Name: "Amazon Future Engineer Scholarship", Criteria: "High school senior planning to study computer science. Financial need. Participation in STEM activities. Includes paid internship at Amazon.", Link: "https://www.amazonfutureengineer.com/scholarships", Deadline: "2026-01-20", Amount: "$40,000", NeedBased: "Y"},
		{ID: "4c890173", Name: "Buick Achievers Scholarship", Criteria: "High school senior or current undergraduate. Plan to major in a STEM field. Demonstrate financial need. Leadership and community involvement.", Link: "https://www.buickachievers.com/", Deadline: "2026-02-28", Amount: "$25,000", NeedBased: "Y"},
		{ID: "5d9a0284", Name: "Davidson Fellows Scholarship", Criteria: "Students 18 or under. Must complete a significant project in STEM, literature, music, philosophy, or outside the box. U.S. citizen or permanent resident.", Link: "https://www.davidsongifted.org/gifted-programs/fellows-scholarship/", Deadline: "2026-02-11", Amount: "$10,000-$50,000", NeedBased: ""},
		{ID: "pev2026a", Name: "Prudential Emerging Visionaries", Criteria: "Ages 14-18. Must have created a financial or societal solution for your community. Replaces the former Prudential Spirit of Community Awards. U.S. residents.", Link: "https://www.prudential.com/emerging-visionaries", Deadline: "2026-11-01", Amount: "Up to $15,000", NeedBased: ""},
		{ID: "7fbc24a6", Name: "Taco Bell Live Mas Scholarship", Criteria: "Ages 16-26. Must be pursuing education at an accredited institution in the U.S. Based on passion and innovation, not just grades. No GPA minimum.", Link: "https://www.tacobellfoundation.org/live-mas-scholarship/", Deadline: "2026-01-24", Amount: "$5,000-$25,000", NeedBased: ""},
		{ID: "d65e378d", Name: "Jackie Robinson Foundation Scholarship", Criteria: "Minority high school senior with leadership potential. SAT/ACT scores considered. Financial need demonstrated. Must be U.S. citizen.", Link: "https://www.jackierobinson.org/apply/", Deadline: "2026-02-01", Amount: "Up to $30,000", NeedBased: "Y"},
		{ID: "fluncf26", Name: "Foot Locker Foundation-UNCF Scholarship", Criteria: "Students attending a UNCF member HBCU. Minimum 2.5 GPA. U.S. citizen, permanent resident, or national. Demonstrate financial need. Seeking bachelor's degree.", Link: "https://uncf.org/scholarships", Deadline: "2026-04-10", Amount: "$5,000", NeedBased: "Y"},
		{ID: "tmcfcoke", Name: "TMCF Coca-Cola First Generation HBCU Scholarship", Criteria: "First-generation college student. Graduating high school senior. Enrolling full-time at a TMCF member HBCU. Financial need. U.S. citizen or permanent resident.", Link: "https://tmcf.org/", Deadline: "2026-05-01", Amount: "$5,000", NeedBased: "Y"},
	}
}
