// pkg/directory/defaults.go

package directory

const signaturePNG = "https://jobsofferings.oss-cn-hangzhou.aliyuncs.com/screenshot-20250308-165706.png"

const quanhomMarks = `
SAY US DOLLARS FOUR THOUSAND ONE HUNDRED AND SEVENTY-FIVE ONLY.
Remark:
1. Bank transaction fee shall be paid by customer.
Please select OUR when making a remittance.
2. Payment is proceeded by 100% TT in advance.
3. Delivery Date: About 3 months(holiday excepted) after receiving the payment.
Bank Information:
Beneficiary:
Hangzhou Quanhom Technology Co., Ltd
Beneficiary bank:
BANK OF CHINA HANGZHOU WESTERN CITY
SCIENTIFIC AND TECHNOLOGICAL INNOVATION BRANCH
SWIFT CODE: BKCHCNBJ910
Beneficiary Account Number: For USD
359784119805
Bank address:
BUILDING NO.4 OVERSEAS HIGH-LEVEL CULTURAL INNOVATION PARK,NO.998 WEST WENYI ROAD HANGZHOU ZHEJIANG IN CHINA
`

const quanhomInfo = `
Hangzhou Quanhom Technology Co., Ltd
Add: 5F&6F Bid 1, Future Star, Yuhang Dist,
Hangzhou 311121 Zhejiang, China
Tel: +86 (0)571 8861 2325
Fax: +86 (0)571 8861 2503
E-mail:info@quanhom.com
Http://ww.quanhom.com
`

var defaultCompanies = []Company{
	{
		Name:           "quanhom",
		Logo:           "https://jobsofferings.oss-cn-hangzhou.aliyuncs.com/20250308-160641.jpeg",
		Marks:          quanhomMarks,
		AdditionalInfo: quanhomInfo,
	},
}

var defaultUsers = []User{
	{Name: "Jobs", Email: "Jobs@example.com", Phone: "1234567890", CountryCode: "+86", Signature: signaturePNG},
	{Name: "Mikasa", Email: "Mikasa@example.com", Phone: "1234567890", CountryCode: "+86", Signature: signaturePNG},
	{Name: "yi king", Email: "yi_king@example.com", Phone: "1234567890", CountryCode: "+86", Signature: signaturePNG},
}

// Default returns the built-in directory.
func Default() *Directory {
	d, err := New(defaultCompanies, defaultUsers)
	if err != nil {
		panic(err)
	}
	return d
}
